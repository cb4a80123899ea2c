package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"blogview/app/middleware"
	"blogview/app/repositories"
	"blogview/app/services"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

// searchForm is the search box submission.
type searchForm struct {
	Query string `json:"q"`
}

// PageRenderer writes the HTML page for a view state snapshot.
type PageRenderer interface {
	HTML(w io.Writer, snap services.Snapshot) error
}

// BlogController handles HTTP requests for the blog homepage
type BlogController struct {
	blogService *services.BlogService
	renderer    PageRenderer
	decoder     *schema.Decoder
	logger      *slog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, renderer PageRenderer, logger *slog.Logger) *BlogController {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")

	return &BlogController{
		blogService: blogService,
		renderer:    renderer,
		decoder:     decoder,
		logger:      logger,
	}
}

func (bc *BlogController) view(w http.ResponseWriter, r *http.Request) (*services.ViewState, bool) {
	view, err := bc.blogService.Session(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		bc.logger.Error("session error", slog.Any("err", err))
		bc.sendError(w, r, "Session unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return view, true
}

// Index renders the visitor's current state
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	view, ok := bc.view(w, r)
	if !ok {
		return
	}
	bc.render(w, r, view.Snapshot())
}

// Search applies the search term from the query string, a form, or a JSON body
func (bc *BlogController) Search(w http.ResponseWriter, r *http.Request) {
	var form searchForm
	if isJSONBody(r) {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			bc.sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			bc.sendError(w, r, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := bc.decoder.Decode(&form, r.Form); err != nil {
			bc.sendError(w, r, "Invalid search: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	view, ok := bc.view(w, r)
	if !ok {
		return
	}
	view.OnSearchChange(form.Query)
	bc.logger.Debug("search", slog.String("term", form.Query), slog.Int("results", len(view.Snapshot().Posts)))

	if r.Method == http.MethodPost && !middleware.IsAPI(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	bc.render(w, r, view.Snapshot())
}

// Select opens the detail view for a post of the full dataset
func (bc *BlogController) Select(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		bc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	view, ok := bc.view(w, r)
	if !ok {
		return
	}
	post, ok := view.Lookup(id)
	if !ok {
		bc.sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}
	view.OnSelect(post)
	bc.afterEvent(w, r, view)
}

// Deselect returns to the list view
func (bc *BlogController) Deselect(w http.ResponseWriter, r *http.Request) {
	view, ok := bc.view(w, r)
	if !ok {
		return
	}
	view.OnDeselect()
	bc.afterEvent(w, r, view)
}

// ListPosts returns the full dataset, or the posts matching ?q= when given.
// The visitor's view state is left alone.
func (bc *BlogController) ListPosts(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("q") {
		bc.sendJSON(w, bc.blogService.Search(r.URL.Query().Get("q")))
		return
	}
	bc.sendJSON(w, bc.blogService.Posts())
}

// ShowPost returns one post
func (bc *BlogController) ShowPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		bc.sendError(w, r, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := bc.blogService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		bc.sendError(w, r, "Post not found", http.StatusNotFound)
		return
	}
	if err != nil {
		bc.sendError(w, r, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}
	bc.sendJSON(w, post)
}

// afterEvent answers a state-changing request: JSON clients get the new
// state, browsers are sent back to the page.
func (bc *BlogController) afterEvent(w http.ResponseWriter, r *http.Request, view *services.ViewState) {
	if middleware.IsAPI(r) {
		bc.sendJSON(w, view.Snapshot())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (bc *BlogController) render(w http.ResponseWriter, r *http.Request, snap services.Snapshot) {
	if middleware.IsAPI(r) {
		bc.sendJSON(w, snap)
		return
	}

	var buf bytes.Buffer
	if err := bc.renderer.HTML(&buf, snap); err != nil {
		bc.logger.Error("template error", slog.Any("err", err))
		bc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func isJSONBody(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// Helper methods for consistent response handling

func (bc *BlogController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		bc.logger.Error("failed to encode JSON response", slog.Any("err", err))
	}
}

func (bc *BlogController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if middleware.IsAPI(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	} else {
		http.Error(w, message, status)
	}
}
