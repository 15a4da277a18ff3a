package controllers

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type MoodController struct {
	Log         *zap.Logger
	MoodUsecase contracts.MoodUsecase
}

var (
	moodControllerInstance *MoodController
	onceMoodController     sync.Once
)

func NewMoodController(logger *zap.Logger, moodUsecase contracts.MoodUsecase) *MoodController {
	onceMoodController.Do(func() {
		moodControllerInstance = &MoodController{
			Log:         logger,
			MoodUsecase: moodUsecase,
		}
	})
	return moodControllerInstance
}

func (ctrl *MoodController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	moods, err := ctrl.MoodUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("MoodController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMoodsSuccess, moods)
}
