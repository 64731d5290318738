package transport

import (
	"encoding/json"
	goerrors "errors"
	"net/http"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// writeError renders a CustomError with its own status; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !goerrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), model.ErrorResponse{
		Error: ce.Error(),
		Code:  ce.ErrorCode(),
	})
}
