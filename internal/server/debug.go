package server

import (
	"encoding/json"
	"net/http"

	"spacecake-server/internal/engine"
)

// DebugHandler предоставляет доступ к состоянию хоста
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/snapshot", h.handleSnapshot)
	mux.HandleFunc("/debug/hub", h.handleHub)
}

// /snapshot - последний разосланный снимок мира
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Latest())
}

// /debug/hub - сколько клиентов сейчас подписано
func (h *DebugHandler) handleHub(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"subscribers": h.Service.Hub.SubscriberCount()})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
