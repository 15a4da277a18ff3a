package controllers

import (
	"context"
	"moodjournal-service/internal/app/config"
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

type EntryController struct {
	Log            *zap.Logger
	EntryUsecase   contracts.EntryUsecase
	InternalConfig *config.InternalConfig
}

var (
	entryControllerInstance *EntryController
	onceEntryController     sync.Once
)

func NewEntryController(logger *zap.Logger, entryUsecase contracts.EntryUsecase, internalConfig *config.InternalConfig) *EntryController {
	onceEntryController.Do(func() {
		entryControllerInstance = &EntryController{
			Log:            logger,
			EntryUsecase:   entryUsecase,
			InternalConfig: internalConfig,
		}
	})
	return entryControllerInstance
}

func (ctrl *EntryController) CreateEntry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("EntryController.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := requireSession(ctrl.Log, w, r, "EntryController.CreateEntry")
	if !ok {
		return
	}

	request := new(requests.CreateEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("EntryController.CreateEntry error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = session.UserID
	utils.SanitizeCreateEntryRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("EntryController.CreateEntry validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.EntryUsecase.CreateEntry(ctx, request)
	if err != nil {
		ctrl.Log.Error("EntryController.CreateEntry error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EntryController.CreateEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEntrySuccessMessage, response)
}

func (ctrl *EntryController) UpdateEntryByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("EntryController.UpdateEntryByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := requireSession(ctrl.Log, w, r, "EntryController.UpdateEntryByID")
	if !ok {
		return
	}

	entryID, err := utils.ParseURLParamID(r, constvars.URLParamEntryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
		return
	}

	request := new(requests.UpdateEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = session.UserID
	request.EntryID = entryID
	utils.SanitizeUpdateEntryRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.EntryUsecase.UpdateEntry(ctx, request)
	if err != nil {
		ctrl.Log.Error("EntryController.UpdateEntryByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EntryController.UpdateEntryByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEntrySuccessMessage, response)
}

func (ctrl *EntryController) FindEntryByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "EntryController.FindEntryByID")
	if !ok {
		return
	}

	entryID, err := utils.ParseURLParamID(r, constvars.URLParamEntryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.EntryUsecase.FindEntryByID(ctx, &requests.FindEntryByID{UserID: session.UserID, EntryID: entryID})
	if err != nil {
		ctrl.Log.Error("EntryController.FindEntryByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindEntrySuccessMessage, response)
}

// FindEntries lists the caller's entries. journal_id, from and to are
// optional; from and to accept RFC3339 timestamps or plain dates in the app
// timezone, and a plain-date `to` includes that whole day.
func (ctrl *EntryController) FindEntries(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "EntryController.FindEntries")
	if !ok {
		return
	}

	loc := ctrl.InternalConfig.Location()
	journalID, err := utils.ParseOptionalQueryInt64(r, constvars.URLQueryParamJournalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamJournalID))
		return
	}
	from, err := utils.ParseOptionalQueryTime(r, constvars.URLQueryParamFrom, loc)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamFrom))
		return
	}
	to, err := utils.ParseOptionalQueryDayEnd(r, constvars.URLQueryParamTo, loc)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLQueryValidation(err, constvars.URLQueryParamTo))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	response, err := ctrl.EntryUsecase.FindEntries(ctx, &requests.FindEntries{
		UserID:    session.UserID,
		JournalID: journalID,
		From:      from,
		To:        to,
	})
	if err != nil {
		ctrl.Log.Error("EntryController.FindEntries error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindEntriesSuccessMessage, response)
}

func (ctrl *EntryController) DeleteEntryByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	session, ok := requireSession(ctrl.Log, w, r, "EntryController.DeleteEntryByID")
	if !ok {
		return
	}

	entryID, err := utils.ParseURLParamID(r, constvars.URLParamEntryID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamEntryID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.EntryUsecase.DeleteEntryByID(ctx, &requests.DeleteEntryByID{UserID: session.UserID, EntryID: entryID}); err != nil {
		ctrl.Log.Error("EntryController.DeleteEntryByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EntryController.DeleteEntryByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEntrySuccessMessage, nil)
}
