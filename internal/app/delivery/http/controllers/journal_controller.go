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

type JournalController struct {
	Log            *zap.Logger
	JournalUsecase contracts.JournalUsecase
}

var (
	journalControllerInstance *JournalController
	onceJournalController     sync.Once
)

func NewJournalController(logger *zap.Logger, journalUsecase contracts.JournalUsecase) *JournalController {
	onceJournalController.Do(func() {
		instance := &JournalController{
			Log:            logger,
			JournalUsecase: journalUsecase,
		}
		journalControllerInstance = instance
	})
	return journalControllerInstance
}

func (ctrl *JournalController) CreateJournal(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("JournalController.CreateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := requireSession(ctrl.Log, w, r, "JournalController.CreateJournal")
	if !ok {
		return
	}

	request := new(requests.CreateJournal)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("JournalController.CreateJournal error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = session.UserID
	utils.SanitizeCreateJournalRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("JournalController.CreateJournal validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.JournalUsecase.CreateJournal(ctx, request)
	if err != nil {
		ctrl.Log.Error("JournalController.CreateJournal error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("JournalController.CreateJournal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateJournalSuccessMessage, response)
}

func (ctrl *JournalController) UpdateJournalByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("JournalController.UpdateJournalByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := requireSession(ctrl.Log, w, r, "JournalController.UpdateJournalByID")
	if !ok {
		return
	}

	journalID, err := utils.ParseURLParamID(r, constvars.URLParamJournalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamJournalID))
		return
	}

	request := new(requests.UpdateJournal)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("JournalController.UpdateJournalByID error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = session.UserID
	request.JournalID = journalID
	utils.SanitizeUpdateJournalRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.JournalUsecase.UpdateJournal(ctx, request)
	if err != nil {
		ctrl.Log.Error("JournalController.UpdateJournalByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("JournalController.UpdateJournalByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateJournalSuccessMessage, response)
}

func (ctrl *JournalController) FindJournalByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "JournalController.FindJournalByID")
	if !ok {
		return
	}

	journalID, err := utils.ParseURLParamID(r, constvars.URLParamJournalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamJournalID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournalByID(ctx, &requests.FindJournalByID{UserID: session.UserID, JournalID: journalID})
	if err != nil {
		ctrl.Log.Error("JournalController.FindJournalByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindJournalSuccessMessage, response)
}

func (ctrl *JournalController) FindJournals(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "JournalController.FindJournals")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournals(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("JournalController.FindJournals error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindJournalsSuccessMessage, response)
}

func (ctrl *JournalController) FindJournalEntries(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "JournalController.FindJournalEntries")
	if !ok {
		return
	}

	journalID, err := utils.ParseURLParamID(r, constvars.URLParamJournalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamJournalID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournalEntries(ctx, &requests.FindJournalEntries{UserID: session.UserID, JournalID: journalID})
	if err != nil {
		ctrl.Log.Error("JournalController.FindJournalEntries error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindEntriesSuccessMessage, response)
}

func (ctrl *JournalController) DeleteJournalByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "JournalController.DeleteJournalByID")
	if !ok {
		return
	}

	journalID, err := utils.ParseURLParamID(r, constvars.URLParamJournalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamJournalID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.JournalUsecase.DeleteJournalByID(ctx, &requests.DeleteJournalByID{UserID: session.UserID, JournalID: journalID}); err != nil {
		ctrl.Log.Error("JournalController.DeleteJournalByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("JournalController.DeleteJournalByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteJournalSuccessMessage, nil)
}
