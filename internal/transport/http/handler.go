package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ribnuu/PERN-Task1-sub000/internal/domain"
	"github.com/ribnuu/PERN-Task1-sub000/internal/dto"
	"github.com/ribnuu/PERN-Task1-sub000/internal/pkg/log"
)

type Handler struct {
	UC        domain.PersonUsecase
	Val       *validator.Validate
	BodyLimit int64
}

func NewHandler(uc domain.PersonUsecase, bodyLimit int64) *Handler {
	return &Handler{UC: uc, Val: dto.NewValidator(), BodyLimit: bodyLimit}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Ready(r.Context()); err != nil {
		log.Warn.Printf("ready store_err err=%v", err)
		writeJSON(w, StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")

	switch q.Get("scope") {
	case "", "personal":
		rows, err := h.UC.Search(r.Context(), query)
		if err != nil {
			h.writeUCErr(w, "search", 0, err)
			return
		}
		log.Info.Printf("search ok query=%q hits=%d", query, len(rows))
		writeJSON(w, StatusOK, dto.NewPersonSummaries(rows))
	case "all":
		res, err := h.UC.SearchAll(r.Context(), query)
		if err != nil {
			h.writeUCErr(w, "search_all", 0, err)
			return
		}
		log.Info.Printf("search_all ok query=%q personal=%d banking=%d family=%d",
			query, len(res.Personal), len(res.Banking), len(res.Family))
		writeJSON(w, StatusOK, dto.NewSearchResponse(res))
	default:
		writeErr(w, StatusBadRequest, MsgInvalidScope, map[string]string{"scope": "personal|all"})
	}
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("get_person invalid_id id=%q", mux.Vars(r)["id"])
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	a, err := h.UC.Get(r.Context(), id)
	if err != nil {
		h.writeUCErr(w, "get_person", id, err)
		return
	}
	if a == nil {
		writeErr(w, StatusNotFound, MsgNotFound, nil)
		return
	}
	log.Info.Printf("get_person ok id=%d family=%d vehicles=%d", id, len(a.Family), len(a.Vehicles))
	writeJSON(w, StatusOK, dto.NewPersonResponse(a))
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePerson(w, r, "create_person")
	if !ok {
		return
	}
	a := req.ToDomain()

	id, err := h.UC.Create(r.Context(), a)
	if err != nil {
		h.writeUCErr(w, "create_person", 0, err)
		return
	}
	log.Info.Printf("create_person ok id=%d nic=%q family=%d vehicles=%d body_marks=%d devices=%d calls=%d",
		id, a.Personal.NIC, len(a.Family), len(a.Vehicles), len(a.BodyMarks), len(a.UsedDevices), len(a.CallHistory))
	writeJSON(w, StatusCreated, dto.CreatedResponse{ID: id})
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("update_person invalid_id id=%q", mux.Vars(r)["id"])
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	req, ok := h.decodePerson(w, r, "update_person")
	if !ok {
		return
	}
	a := req.ToDomain()

	if err := h.UC.Update(r.Context(), id, a); err != nil {
		h.writeUCErr(w, "update_person", id, err)
		return
	}
	log.Info.Printf("update_person ok id=%d family=%d", id, len(a.Family))
	writeJSON(w, StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		log.Error.Printf("delete_person invalid_id id=%q", mux.Vars(r)["id"])
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	if err := h.UC.Delete(r.Context(), id); err != nil {
		h.writeUCErr(w, "delete_person", id, err)
		return
	}
	log.Info.Printf("delete_person ok id=%d", id)
	writeJSON(w, StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodePerson(w http.ResponseWriter, r *http.Request, op string) (*dto.PersonRequest, bool) {
	var req dto.PersonRequest
	if err := decodeJSON(w, r, h.BodyLimit, &req); err != nil {
		log.Error.Printf("%s decode_json err=%v", op, err)
		writeDecodeErr(w, err)
		return nil, false
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("%s validate err=%v", op, err)
		writeErr(w, StatusBadRequest, MsgValidation, dto.FieldErrors(err))
		return nil, false
	}
	return &req, true
}

// writeUCErr maps the domain error taxonomy onto status codes. Only
// unexpected errors are logged at error level; their text never reaches
// the client.
func (h *Handler) writeUCErr(w http.ResponseWriter, op string, id int64, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		log.Info.Printf("%s rejected id=%d err=%v", op, id, err)
		writeErr(w, StatusBadRequest, MsgValidation, ve.Fields)
	case errors.Is(err, domain.ErrInvalidID):
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
	case errors.Is(err, domain.ErrValidation):
		writeErr(w, StatusBadRequest, MsgValidation, nil)
	case errors.Is(err, domain.ErrNotFound):
		writeErr(w, StatusNotFound, MsgNotFound, nil)
	case errors.Is(err, domain.ErrConflict):
		log.Info.Printf("%s conflict id=%d err=%v", op, id, err)
		writeErr(w, StatusConflict, MsgConflict, map[string]string{"personal.nic": "already exists"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Warn.Printf("%s store_unavailable id=%d err=%v", op, id, err)
		writeErr(w, StatusServiceUnavailable, MsgUnavailable, nil)
	default:
		log.Error.Printf("%s repo_err id=%d err=%v", op, id, err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
