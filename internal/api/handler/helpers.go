package handler

import (
	"net/http"
	"strconv"
	"strings"

	"judge_api/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// IDPattern restricts {id} route params to decimal digits.
const IDPattern = "{id:[0-9]+}"

var validate = validator.New(validator.WithRequiredStructEnabled())

// pathID parses the {id} route param as a 32-bit integer, the width of the
// serial keys.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

// validationMessage lists the failing fields of a validator error.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field())+" ("+fe.Tag()+")")
	}
	return "Invalid fields: " + strings.Join(fields, ", ")
}

// respondError maps err to a status. 500s are logged and answered without detail.
func respondError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		internalError(w, r, log, err)
		return
	}
	common.RespondWithError(w, status, err.Error())
}

func internalError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	log.WithFields(logrus.Fields{
		"request_id": chiMiddleware.GetReqID(r.Context()),
		"path":       r.URL.Path,
	}).WithError(err).Error("request failed")
	common.RespondWithInternalError(w)
}
