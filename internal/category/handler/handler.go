package handler

import (
	"context"

	"github.com/fekuna/omnipos-console/internal/category"
	"github.com/fekuna/omnipos-console/internal/category/dto"
	"github.com/fekuna/omnipos-console/internal/console"
	"github.com/fekuna/omnipos-console/internal/logger"
)

var _ console.Registrar = (*CategoryHandler)(nil)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type ListCategoriesResponse struct {
	Categories []dto.Category `json:"categories"`
}

type RenameCategoryResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Products int    `json:"products"`
}

func (h *CategoryHandler) Register(r *console.Router) {
	r.Handle("category", "list", "category list [active=true]", h.ListCategories)
	r.Handle("category", "rename", "category rename from= to=", h.RenameCategory)
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *console.Request) (interface{}, error) {
	activeOnly, err := req.Bool("active")
	if err != nil {
		return nil, err
	}

	categories, err := h.uc.ListCategories(ctx, &dto.CategoryFilters{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	return &ListCategoriesResponse{Categories: categories}, nil
}

func (h *CategoryHandler) RenameCategory(ctx context.Context, req *console.Request) (interface{}, error) {
	input := &dto.RenameCategoryInput{
		From: req.String("from"),
		To:   req.String("to"),
	}
	n, err := h.uc.RenameCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	return &RenameCategoryResponse{From: input.From, To: input.To, Products: n}, nil
}
