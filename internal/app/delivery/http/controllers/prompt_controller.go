package controllers

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PromptController struct {
	Log           *zap.Logger
	PromptUsecase contracts.PromptUsecase
}

var (
	promptControllerInstance *PromptController
	oncePromptController     sync.Once
)

func NewPromptController(logger *zap.Logger, promptUsecase contracts.PromptUsecase) *PromptController {
	oncePromptController.Do(func() {
		promptControllerInstance = &PromptController{
			Log:           logger,
			PromptUsecase: promptUsecase,
		}
	})
	return promptControllerInstance
}

func (ctrl *PromptController) GetPrompt(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "PromptController.GetPrompt")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prompt, err := ctrl.PromptUsecase.GetPrompt(ctx, &requests.GetPrompt{UserID: session.UserID})
	if err != nil {
		ctrl.Log.Error("PromptController.GetPrompt error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPromptSuccess, prompt)
}

func (ctrl *PromptController) GetCustomPrompt(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "PromptController.GetCustomPrompt")
	if !ok {
		return
	}

	request := new(requests.CustomPrompt)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = session.UserID
	utils.SanitizeCustomPromptRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prompt, err := ctrl.PromptUsecase.GetCustomPrompt(ctx, request)
	if err != nil {
		ctrl.Log.Error("PromptController.GetCustomPrompt error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPromptSuccess, prompt)
}
