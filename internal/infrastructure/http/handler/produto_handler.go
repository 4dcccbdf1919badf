package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mrops-br/produto-api/internal/app/dto"
	"github.com/mrops-br/produto-api/internal/app/service"
	"github.com/mrops-br/produto-api/internal/domain"
	"github.com/mrops-br/produto-api/internal/infrastructure/http/response"
)

// ProdutoHandler handles HTTP requests for products
type ProdutoHandler struct {
	service *service.ProdutoService
	logger  *slog.Logger
}

// NewProdutoHandler creates a new product handler
func NewProdutoHandler(service *service.ProdutoService, logger *slog.Logger) *ProdutoHandler {
	return &ProdutoHandler{
		service: service,
		logger:  logger,
	}
}

// Routes mounts the product endpoints on r
func (h *ProdutoHandler) Routes(r chi.Router) {
	r.Get("/", h.ListProdutos)
	r.Post("/", h.CreateProduto)
	r.Get("/{id}", h.GetProduto)
	r.Put("/{id}", h.UpdateProduto)
	r.Delete("/{id}", h.DeleteProduto)
}

// ListProdutos handles GET /produtos
func (h *ProdutoHandler) ListProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.service.ObterTodosProdutos(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.ToProdutoResponseList(produtos))
}

// GetProduto handles GET /produtos/{id}
func (h *ProdutoHandler) GetProduto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	produto, err := h.service.GetProduto(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if produto == nil {
		h.writeError(w, r, domain.ErrProdutoNaoEncontrado)
		return
	}

	response.JSON(w, http.StatusOK, dto.ToProdutoResponse(produto))
}

// CreateProduto handles POST /produtos. A JSON null body is passed on as an absent product.
func (h *ProdutoHandler) CreateProduto(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	produto := req.ToDomain()
	if err := h.service.SalvarProduto(r.Context(), produto); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/produtos/%d", produto.ID))
	response.JSON(w, http.StatusCreated, dto.ToProdutoResponse(produto))
}

// UpdateProduto handles PUT /produtos/{id}. The path id wins over any id in the body.
func (h *ProdutoHandler) UpdateProduto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	produto := req.ToDomain()
	if produto != nil {
		produto.ID = id
	}

	if err := h.service.AtualizarProduto(r.Context(), produto); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.ToProdutoResponse(produto))
}

// DeleteProduto handles DELETE /produtos/{id}
func (h *ProdutoHandler) DeleteProduto(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.ExcluirProduto(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProdutoHandler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid product id",
			slog.String("id", raw),
		)
		response.Error(w, http.StatusBadRequest, fmt.Errorf("id inválido: %q", raw))
		return 0, false
	}
	return id, true
}

func (h *ProdutoHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.ProdutoRequest, bool) {
	var req *dto.ProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return nil, false
	}
	return req, true
}

func (h *ProdutoHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrArgumentoNulo), errors.Is(err, domain.ErrArgumentoInvalido):
		response.Error(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrOperacaoInvalida), errors.Is(err, domain.ErrProdutoNaoEncontrado):
		response.Error(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrProdutoJaExiste):
		response.Error(w, http.StatusConflict, err)
	default:
		h.logger.ErrorContext(r.Context(), "Unexpected error handling request",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusInternalServerError, err)
	}
}
