package server

import (
	"encoding/json"
	"net/http"
	"new-haven-server/internal/network"
	"new-haven-server/pkg/api"
	"strconv"
	"strings"
)

// DebugHandler отдает внутреннее состояние матча.
// Состояние берется из последнего опубликованного снапшота: цикл не блокируется.
type DebugHandler struct {
	Game      Game
	Publisher *network.Publisher
}

func NewDebugHandler(g Game, p *network.Publisher) *DebugHandler {
	return &DebugHandler{Game: g, Publisher: p}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/entities", h.handleEntities)
	mux.HandleFunc("/debug/level", h.handleLevel)
}

// /debug/state - последний снапшот целиком
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Publisher.Latest()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap)
}

// /debug/entities?kind=enemy - сущности последнего снапшота, опционально по типу
func (h *DebugHandler) handleEntities(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.Publisher.Latest()
	if !ok {
		http.Error(w, "No snapshot published yet", http.StatusServiceUnavailable)
		return
	}

	kind := strings.ToLower(r.URL.Query().Get("kind"))
	out := make([]api.EntityView, 0, len(snap.Entities))
	for _, e := range snap.Entities {
		if kind == "" || strings.ToLower(e.Type) == kind {
			out = append(out, e)
		}
	}
	writeJSON(w, out)
}

// /debug/level?id=5 - описание уровня из генератора (кэш, без побочных эффектов)
func (h *DebugHandler) handleLevel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "id must be a number", http.StatusBadRequest)
		return
	}
	data, err := h.Game.Generator().Generate(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, data)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
