package handler

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/api/middleware"
	"stockroom/internal/app/service"
	"stockroom/internal/common"

	"github.com/go-chi/chi/v5"
)

type ItemHandler struct {
	itemService *service.ItemService
}

func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator) // All item routes require auth
	r.Get("/", h.listItems)
	r.Post("/", h.createItem)
	r.Get("/{itemID}", h.getItem)
	r.Put("/{itemID}", h.updateItem)
	r.Delete("/{itemID}", h.deleteItem)
}

func (h *ItemHandler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.itemService.GetItem(r.Context(), itemID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) createItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	// An omitted quantity defaults to 0 at the API boundary; the service
	// itself requires it to be present.
	if req.Quantity == nil {
		zero := 0
		req.Quantity = &zero
	}

	item, err := h.itemService.CreateItem(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	var req service.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), itemID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	if err := h.itemService.DeleteItem(r.Context(), itemID); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
