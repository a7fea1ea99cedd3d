package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hnimtadd/knitchart"
	"github.com/hnimtadd/knitchart/chart/interact"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render/markup"
	"github.com/hnimtadd/knitchart/chart/render/raster"
	"github.com/hnimtadd/knitchart/logger"
	"github.com/spf13/cobra"
)

// pointerScript forwards pointer events on data cells to /api/pointer and
// reloads the charts when one changed something.
const pointerScript = `
const cell = (e) => e.target.closest && e.target.closest("td[data-grid]");
const refresh = () => fetch("/").then((r) => r.text()).then((t) => {
  document.body.innerHTML = new DOMParser().parseFromString(t, "text/html").body.innerHTML;
});
const send = (kind, td) => {
  const ev = {kind: kind};
  if (td) {
    ev.grid = td.dataset.grid;
    ev.row = Number(td.dataset.row);
    ev.col = Number(td.dataset.col);
  }
  fetch("/api/pointer", {method: "POST", headers: {"Content-Type": "application/json"}, body: JSON.stringify(ev)})
    .then((r) => r.json()).then((r) => { if (r.changed) refresh(); });
};
document.addEventListener("pointerdown", (e) => { const td = cell(e); if (td) { e.preventDefault(); send("down", td); } });
document.addEventListener("pointerup", (e) => send("up", cell(e)));
document.addEventListener("pointerover", (e) => { const td = cell(e); if (td) send("enter", td); });
document.addEventListener("pointerout", (e) => { const td = cell(e); if (td) send("exit", td); });
`

var pointerKinds = map[string]interact.Kind{
	"down":  interact.Down,
	"up":    interact.Up,
	"enter": interact.Enter,
	"exit":  interact.Exit,
}

type pointerPayload struct {
	Kind string       `json:"kind"`
	Grid point.GridID `json:"grid"`
	Row  int          `json:"row"`
	Col  int          `json:"col"`
}

type pointerResponse struct {
	Changed bool `json:"changed"`
}

type chartServer struct {
	chart  *knitchart.Chart
	router *mux.Router
	cellPx int
	logger logger.Logger
}

func newChartServer(chart *knitchart.Chart, cellPx int, log logger.Logger) *chartServer {
	r := mux.NewRouter()
	s := &chartServer{
		chart:  chart,
		router: r,
		cellPx: cellPx,
		logger: logger.OrNop(log),
	}

	r.HandleFunc("/", s.Page).Methods(http.MethodGet)
	r.HandleFunc("/chart.png", s.PNG).Methods(http.MethodGet)
	r.HandleFunc("/api/pointer", s.Pointer).Methods(http.MethodPost)
	r.HandleFunc("/api/save", s.Save).Methods(http.MethodPost)

	return s
}

func (s *chartServer) Router() http.Handler {
	return s.router
}

func (s *chartServer) Page(w http.ResponseWriter, req *http.Request) {
	page := markup.Page(s.chart.Name(), s.chart.Sheet(), s.chart.RenderStatic()...)
	markup.AddScript(page, pointerScript)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := markup.Write(w, page); err != nil {
		s.logger.Error("failed to write page", "error", err.Error())
	}
}

func (s *chartServer) PNG(w http.ResponseWriter, req *http.Request) {
	cellPx := s.cellPx
	if v := req.URL.Query().Get("cell_px"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 64 {
			http.Error(w, "cell_px must be a number between 1 and 64", http.StatusBadRequest)
			return
		}
		cellPx = n
	}

	w.Header().Set("Content-Type", "image/png")
	if err := raster.EncodePanelsPNG(w, s.chart.RenderStatic(), raster.Options{CellPx: cellPx, GridLines: true}); err != nil {
		s.logger.Error("failed to write image", "error", err.Error())
	}
}

func (s *chartServer) Pointer(w http.ResponseWriter, req *http.Request) {
	var payload pointerPayload
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		http.Error(w, fmt.Sprintf("error parsing JSON payload: %v", err), http.StatusBadRequest)
		return
	}
	kind, ok := pointerKinds[payload.Kind]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown pointer event kind %q", payload.Kind), http.StatusBadRequest)
		return
	}

	changed, err := s.chart.HandlePointer(interact.Event{
		Kind: kind,
		Cell: point.NewCellID(payload.Grid, payload.Row, payload.Col),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pointerResponse{Changed: changed}); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering response: %v", err), http.StatusInternalServerError)
	}
}

func (s *chartServer) Save(w http.ResponseWriter, req *http.Request) {
	if err := s.chart.Save(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newServeCmd(root *rootFlags) *cobra.Command {
	var (
		app    string
		listen string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart as a web page that can be painted on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd, root)
			if err != nil {
				return err
			}
			chart, err := ctx.openChart(app)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ctx.cfg.Listen,
				Handler:           newChartServer(chart, ctx.cfg.CellPx, ctx.logger).Router(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-sigCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			ctx.logger.Info("serving chart", "app", chart.Name(), "listen", ctx.cfg.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return chart.Save()
		},
	}

	cmd.Flags().StringVar(&app, "app", "", "Application: twocolor or metapixel (default from config)")
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default from config)")

	return cmd
}
