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

	"go.uber.org/zap"
)

type InsightController struct {
	Log            *zap.Logger
	InsightUsecase contracts.InsightUsecase
}

var (
	insightControllerInstance *InsightController
	onceInsightController     sync.Once
)

func NewInsightController(logger *zap.Logger, insightUsecase contracts.InsightUsecase) *InsightController {
	onceInsightController.Do(func() {
		insightControllerInstance = &InsightController{
			Log:            logger,
			InsightUsecase: insightUsecase,
		}
	})
	return insightControllerInstance
}

func (ctrl *InsightController) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "InsightController.GetHeatmap")
	if !ok {
		return
	}

	year, err := utils.ParseQueryInt(r, constvars.URLQueryParamYear, 0)
	if err != nil || year < 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamYear))
		return
	}
	month, err := utils.ParseQueryInt(r, constvars.URLQueryParamMonth, 0)
	if err != nil || month < 0 || month > 12 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamMonth))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	days, err := ctrl.InsightUsecase.GetHeatmap(ctx, &requests.Heatmap{UserID: session.UserID, Year: year, Month: month})
	if err != nil {
		ctrl.Log.Error("InsightController.GetHeatmap error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHeatmapSuccess, days)
}

func (ctrl *InsightController) GetMoodTrend(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "InsightController.GetMoodTrend")
	if !ok {
		return
	}

	limit, err := utils.ParseQueryInt(r, constvars.URLQueryParamLimit, constvars.MoodTrendDefault)
	if err != nil || limit < 1 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamLimit))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	points, err := ctrl.InsightUsecase.GetMoodTrend(ctx, &requests.MoodTrend{UserID: session.UserID, Limit: limit})
	if err != nil {
		ctrl.Log.Error("InsightController.GetMoodTrend error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMoodTrendSuccess, points)
}
