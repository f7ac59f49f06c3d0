package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
	"github.com/vfg2006/growth-insights-api/pkg/log"
	"github.com/vfg2006/growth-insights-api/pkg/middleware"
	"github.com/vfg2006/growth-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errInvalidParam  = errors.New("parâmetro inválido")
	errForeignEntity = errors.New("entidade fora do escopo do usuário")
)

// pathID lê um id numérico da rota
func pathID(r *http.Request, name string) (uint, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidParam
	}
	return uint(id), nil
}

// queryID lê um id opcional da query string
func queryID(r *http.Request, name string) (*uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errInvalidParam
	}

	value := uint(id)
	return &value, nil
}

func listFilter(r *http.Request) (domain.ListFilter, error) {
	var filter domain.ListFilter
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errInvalidParam
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, errInvalidParam
		}
		filter.Offset = offset
	}

	return filter.Normalize(), nil
}

func dateRange(r *http.Request) (domain.DateRange, error) {
	from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: from, To: to}, nil
}

// entityID usa a entidade do token. Só administradores podem consultar
// outra entidade via entity_id na query.
func entityID(r *http.Request) (uint, error) {
	id, err := queryID(r, "entity_id")
	if err != nil {
		return 0, err
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return 0, errInvalidParam
	}
	if id != nil {
		if claims.UserRoleID != middleware.RoleAdmin && *id != claims.EntityID {
			return 0, errForeignEntity
		}
		return *id, nil
	}

	if claims.EntityID == 0 {
		return 0, errInvalidParam
	}
	return claims.EntityID, nil
}

func writeEntityIDError(w http.ResponseWriter, err error) {
	if errors.Is(err, errForeignEntity) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Sem acesso aos dados desta entidade", nil)
		return
	}
	writeInvalidParam(w, "entity_id")
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("corpo da requisição vazio")
		}
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError usa o código resolvido pelo serviço; erros sem código viram SRV_001
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var coded apiErrors.CodedError
	if errors.As(err, &coded) {
		apiErrors.WriteError(w, coded.ErrorCode(), coded.ErrorDetails(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

func writeInvalidParam(w http.ResponseWriter, name string) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro inválido: "+name, nil)
}

func writeInvalidBody(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
}
