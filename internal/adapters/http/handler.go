package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soumajit03/StackUp-PlaylistManager/internal/app"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/domain"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/ports"
)

// Handler holds the HTTP handlers for the playlist API.
type Handler struct {
	service ports.PlaylistService
}

// NewHandler creates a new HTTP handler with the given playlist service.
func NewHandler(service ports.PlaylistService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/api/youtube/playlist", h.ImportPlaylist)

	api := r.Group("/api/playlists")
	{
		api.POST("", h.SavePlaylist)
		api.GET("/:userId", h.ListPlaylists)
		api.GET("/:userId/:playlistId/summary", h.PlaylistSummary)
		api.POST("/video-status", h.UpdateVideoStatus)
		api.DELETE("/:userId/:playlistId", h.DeletePlaylist)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ImportPlaylist fetches a playlist from YouTube and returns it normalized.
//
//	@Summary		Import a YouTube playlist
//	@Description	Fetches all videos of the playlist from the YouTube Data API, following pagination,
//	@Description	and returns a normalized playlist with every video defaulted to unwatched.
//	@Description	Accepts a bare playlist id or a full playlist URL.
//	@Tags			youtube
//	@Produce		json
//	@Param			playlistId	query		string	true	"YouTube playlist id or URL"
//	@Success		200	{object}	domain.Playlist
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/api/youtube/playlist [get]
func (h *Handler) ImportPlaylist(c *gin.Context) {
	playlistID := c.Query("playlistId")
	if playlistID == "" {
		writeError(c, domain.ErrInvalidInput, "query parameter 'playlistId' is required")
		return
	}

	playlist, err := h.service.ImportPlaylist(c.Request.Context(), playlistID)
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, playlist)
}

// SavePlaylist stores or replaces a playlist for a user.
//
//	@Summary		Save or replace a playlist
//	@Description	Upserts the playlist keyed by (userId, playlistId). A replace overwrites the stored
//	@Description	video list wholesale; pass preserveStatus=true to carry previously set status labels
//	@Description	and notes over to the new video list, matched by video id.
//	@Tags			playlists
//	@Accept			json
//	@Produce		json
//	@Param			playlist		body		domain.Playlist	true	"Playlist to store"
//	@Param			preserveStatus	query		bool			false	"Merge stored statuses onto the incoming videos"
//	@Success		201	{object}	domain.Playlist
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/playlists [post]
func (h *Handler) SavePlaylist(c *gin.Context) {
	var playlist domain.Playlist
	if err := c.ShouldBindJSON(&playlist); err != nil {
		writeError(c, domain.ErrInvalidInput, "invalid request body: "+err.Error())
		return
	}

	preserve := c.Query("preserveStatus") == "true"

	stored, err := h.service.SaveOrReplacePlaylist(c.Request.Context(), &playlist, preserve)
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// ListPlaylists returns all playlists for a user.
//
//	@Summary		List user playlists
//	@Description	Returns every stored playlist owned by the user. Legacy single-value video
//	@Description	statuses are normalized to label sets on read.
//	@Tags			playlists
//	@Produce		json
//	@Param			userId	path		string	true	"User id"
//	@Success		200	{array}		domain.Playlist
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/playlists/{userId} [get]
func (h *Handler) ListPlaylists(c *gin.Context) {
	playlists, err := h.service.ListPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, playlists)
}

// PlaylistSummary returns status counts and watch progress for a playlist.
//
//	@Summary		Playlist summary
//	@Description	Per-label video counts plus the rounded watched percentage. A video with several
//	@Description	labels is counted once in each matching bucket.
//	@Tags			playlists
//	@Produce		json
//	@Param			userId		path		string	true	"User id"
//	@Param			playlistId	path		string	true	"Playlist id"
//	@Success		200	{object}	SummaryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/playlists/{userId}/{playlistId}/summary [get]
func (h *Handler) PlaylistSummary(c *gin.Context) {
	playlists, err := h.service.ListPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	playlistID := c.Param("playlistId")
	for i := range playlists {
		if playlists[i].PlaylistID == playlistID {
			c.JSON(http.StatusOK, SummaryResponse{
				Counts:   app.CountByStatus(&playlists[i]),
				Progress: app.ProgressPercent(&playlists[i]),
			})
			return
		}
	}

	writeError(c, domain.ErrPlaylistNotFound, "playlist not found: "+playlistID)
}

// UpdateVideoStatus applies one add/remove label mutation to a video.
//
//	@Summary		Update video status
//	@Description	Adds or removes one status label on one video. Adding any label other than
//	@Description	"unwatched" removes "unwatched" from the set; both operations are idempotent.
//	@Tags			playlists
//	@Accept			json
//	@Produce		json
//	@Param			request	body		StatusUpdateRequest	true	"Status mutation"
//	@Success		200	{object}	StatusUpdateResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/playlists/video-status [post]
func (h *Handler) UpdateVideoStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.ErrInvalidInput, "invalid request body: "+err.Error())
		return
	}

	label, err := domain.ParseStatusLabel(req.Status)
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	action := req.Action
	if action == "" {
		// The original client omitted the action and meant "add".
		action = string(domain.ActionAdd)
	}
	parsedAction, err := domain.ParseStatusAction(action)
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	video, err := h.service.SetVideoStatus(c.Request.Context(), req.UserID, req.PlaylistID, req.VideoID, label, parsedAction)
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, StatusUpdateResponse{Success: true, Video: video})
}

// DeletePlaylist removes a stored playlist.
//
//	@Summary		Delete a playlist
//	@Description	Deletes the playlist document for the user.
//	@Tags			playlists
//	@Produce		json
//	@Param			userId		path		string	true	"User id"
//	@Param			playlistId	path		string	true	"Playlist id"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/playlists/{userId}/{playlistId} [delete]
func (h *Handler) DeletePlaylist(c *gin.Context) {
	err := h.service.DeletePlaylist(c.Request.Context(), c.Param("userId"), c.Param("playlistId"))
	if err != nil {
		writeError(c, err, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// -- Request/response types --------------------------------------------------

// StatusUpdateRequest is the body of POST /api/playlists/video-status.
type StatusUpdateRequest struct {
	UserID     string `json:"userId" binding:"required"`
	PlaylistID string `json:"playlistId" binding:"required"`
	VideoID    string `json:"videoId" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Action     string `json:"action"`
}

// StatusUpdateResponse mirrors the original API's {success, video} shape.
type StatusUpdateResponse struct {
	Success bool          `json:"success"`
	Video   *domain.Video `json:"video"`
}

// SummaryResponse carries the derived per-playlist view numbers.
type SummaryResponse struct {
	Counts   app.StatusCounts `json:"counts"`
	Progress int              `json:"progress"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps domain error classes onto HTTP status codes.
func writeError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad_request", Message: message})
	case errors.Is(err, domain.ErrPlaylistNotFound), errors.Is(err, domain.ErrVideoNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: message})
	case errors.Is(err, domain.ErrUpstream):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream_error", Message: message})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: message})
	}
}
