package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/itemdsl"
	"github.com/osse101/itemforge/internal/logger"
)

// ItemSummary is one catalog entry in a listing
type ItemSummary struct {
	Name     string `json:"name"`
	Base     string `json:"base,omitempty"`
	Material string `json:"material"`
	Title    string `json:"title"`
}

// ListItemsResponse lists catalog entries in catalog order
type ListItemsResponse struct {
	Items []ItemSummary `json:"items"`
}

// ItemResponse carries a definition and the stack built from it
type ItemResponse struct {
	Name       string            `json:"name,omitempty"`
	Definition *item.Def         `json:"definition,omitempty"`
	Stack      *domain.ItemStack `json:"stack"`
}

// BuildRequest names a catalog item or carries an ad-hoc definition
type BuildRequest struct {
	Name string    `json:"name" validate:"required_without=Def,excluded_with=Def"`
	Def  *item.Def `json:"definition" validate:"-"`
}

// StackPayload is an item stack as sent by clients
type StackPayload struct {
	Type   string           `json:"type" validate:"required,material"`
	Amount int              `json:"amount" validate:"min=0,max=64"`
	Meta   *domain.ItemMeta `json:"meta"`
}

// EditRequest applies an edit definition to a client stack
type EditRequest struct {
	Stack StackPayload `json:"stack"`
	Edit  item.Def     `json:"edit" validate:"-"`
}

// FieldInfo describes one assignable builder field
type FieldInfo struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// Stack converts the payload into a stack whose meta matches its material
func (p StackPayload) Stack() (*domain.ItemStack, error) {
	m, err := domain.ParseMaterial(p.Type)
	if err != nil {
		return nil, err
	}
	amount := p.Amount
	if amount == 0 {
		amount = 1
	}
	stack := domain.NewItemStack(m, amount)
	if p.Meta != nil {
		stack.SetItemMeta(p.Meta)
	}
	return stack, nil
}

// HandleListItems lists the catalog, optionally filtered by ?material=
func HandleListItems(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter domain.Material
		if name := GetOptionalQueryParam(r, "material", ""); name != "" {
			m, err := domain.ParseMaterial(name)
			if err != nil {
				respondServiceError(w, r, "List items", err)
				return
			}
			filter = m
		}

		resp := ListItemsResponse{Items: []ItemSummary{}}
		for _, name := range svc.Names() {
			sum, err := svc.Describe(name)
			if err != nil {
				// Removed by a concurrent reload
				continue
			}
			if filter != "" && sum.Material != filter {
				continue
			}
			resp.Items = append(resp.Items, ItemSummary{
				Name:     sum.Name,
				Base:     sum.Base,
				Material: sum.Material.String(),
				Title:    sum.Title,
			})
		}

		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetItem returns a catalog definition with a freshly built stack
func HandleGetItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		def, err := svc.Definition(name)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		stack, err := svc.Build(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgBuildFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ItemResponse{Name: name, Definition: &def, Stack: stack})
	}
}

// HandleBuildItem builds a named catalog item or an ad-hoc definition
func HandleBuildItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuildRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Build item"); err != nil {
			return
		}

		var (
			stack *domain.ItemStack
			err   error
		)
		if req.Def != nil {
			stack, err = svc.BuildDef(r.Context(), *req.Def)
		} else {
			stack, err = svc.Build(r.Context(), req.Name)
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgBuildFailed, err)
			return
		}

		name := req.Name
		if req.Def != nil {
			name = req.Def.Name
		}
		logger.FromContext(r.Context()).Info("Item built", "item", name, "material", stack.Type)
		respondJSON(w, http.StatusCreated, ItemResponse{Name: name, Stack: stack})
	}
}

// HandleEditItem edits the submitted stack in place and returns it
func HandleEditItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EditRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Edit item"); err != nil {
			return
		}

		stack, err := req.Stack.Stack()
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidStackError)
			return
		}

		edited, err := svc.Edit(r.Context(), stack, req.Edit)
		if err != nil {
			respondServiceError(w, r, ErrMsgEditFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ItemResponse{Stack: edited})
	}
}

// HandleListFields lists the fields an item definition can assign
func HandleListFields() http.HandlerFunc {
	fields := itemdsl.Fields()
	infos := make([]FieldInfo, len(fields))
	for i, f := range fields {
		infos[i] = FieldInfo{Name: f.Name(), Tag: f.Tag().String()}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: infos})
	}
}
