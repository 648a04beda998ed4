// internal/app/features/volunteers/list.go
package volunteers

import (
	"context"
	"maps"
	"net/http"

	"github.com/dalemusser/volunteerhub/internal/app/system/httpjson"
	"github.com/dalemusser/volunteerhub/internal/app/system/paging"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// listResponse is the paged body for GET /api/volunteers.
type listResponse struct {
	Volunteers []models.Volunteer `json:"volunteers"`
	Total      int64              `json:"total"`
	HasPrev    bool               `json:"has_prev"`
	HasNext    bool               `json:"has_next"`
	PrevCursor string             `json:"prev_cursor,omitempty"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

// ServeList handles GET /api/volunteers (with optional ?q= name prefix
// search and before/after keyset cursors).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	after := query.Get(r, "after")
	before := query.Get(r, "before")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	base := bson.M{}
	if q != "" {
		if fq := text.Fold(q); fq != "" {
			base["full_name_ci"] = bson.M{"$gte": fq, "$lt": fq + "￿"}
		}
	}

	coll := h.DB.Collection("volunteers")
	total, err := coll.CountDocuments(ctx, base)
	if err != nil {
		h.Log.Error("count volunteers failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing volunteers")
		return
	}

	f := maps.Clone(base)
	find := options.Find()
	const sortField = "full_name_ci"

	cfg := paging.ConfigureKeyset(before, after)
	cfg.ApplyToFind(find, sortField)
	if ks := cfg.KeysetWindow(sortField); ks != nil {
		maps.Copy(f, ks)
	}

	cur, err := coll.Find(ctx, f, find)
	if err != nil {
		h.Log.Error("list volunteers failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing volunteers")
		return
	}
	rows := []models.Volunteer{}
	if err := cur.All(ctx, &rows); err != nil {
		h.Log.Error("decode volunteers failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing volunteers")
		return
	}

	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}
	page := paging.TrimPage(&rows, before, after)

	resp := listResponse{
		Volunteers: rows,
		Total:      total,
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
	}
	if len(rows) > 0 {
		resp.PrevCursor, resp.NextCursor = paging.BuildCursors(rows,
			func(v models.Volunteer) string { return v.FullNameCI },
			func(v models.Volunteer) primitive.ObjectID { return v.ID })
	}

	httpjson.Write(w, http.StatusOK, resp)
}
