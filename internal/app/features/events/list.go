// internal/app/features/events/list.go
package events

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

// listResponse is the paged body for GET /api/events.
type listResponse struct {
	Events     []models.Event `json:"events"`
	Total      int64          `json:"total"`
	HasPrev    bool           `json:"has_prev"`
	HasNext    bool           `json:"has_next"`
	PrevCursor string         `json:"prev_cursor,omitempty"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// ServeList handles GET /api/events. Supports ?q= name prefix search,
// ?zip= exact filter, ?date= exact filter, and before/after keyset
// cursors.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	zip := query.Get(r, "zip")
	date := query.Get(r, "date")
	after := query.Get(r, "after")
	before := query.Get(r, "before")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	base := bson.M{}
	if q != "" {
		if fq := text.Fold(q); fq != "" {
			base["name_ci"] = bson.M{"$gte": fq, "$lt": fq + "￿"}
		}
	}
	if zip != "" {
		base["zip_code"] = zip
	}
	if date != "" {
		base["date"] = date
	}

	coll := h.DB.Collection("events")
	total, err := coll.CountDocuments(ctx, base)
	if err != nil {
		h.Log.Error("count events failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing events")
		return
	}

	f := maps.Clone(base)
	find := options.Find()
	const sortField = "name_ci"

	cfg := paging.ConfigureKeyset(before, after)
	cfg.ApplyToFind(find, sortField)
	if ks := cfg.KeysetWindow(sortField); ks != nil {
		maps.Copy(f, ks)
	}

	cur, err := coll.Find(ctx, f, find)
	if err != nil {
		h.Log.Error("list events failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing events")
		return
	}
	rows := []models.Event{}
	if err := cur.All(ctx, &rows); err != nil {
		h.Log.Error("decode events failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Error listing events")
		return
	}

	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}
	page := paging.TrimPage(&rows, before, after)

	// Rosters decode as nil when the stored array is null or missing.
	for i := range rows {
		if rows[i].Volunteers == nil {
			rows[i].Volunteers = []primitive.ObjectID{}
		}
	}

	resp := listResponse{
		Events:  rows,
		Total:   total,
		HasPrev: page.HasPrev,
		HasNext: page.HasNext,
	}
	if len(rows) > 0 {
		resp.PrevCursor, resp.NextCursor = paging.BuildCursors(rows,
			func(e models.Event) string { return e.NameCI },
			func(e models.Event) primitive.ObjectID { return e.ID })
	}

	httpjson.Write(w, http.StatusOK, resp)
}
