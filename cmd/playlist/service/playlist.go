package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vidora/vidora/cmd/dal/db"
	"github.com/vidora/vidora/cmd/model"
	"github.com/vidora/vidora/pkg/errno"
	"github.com/vidora/vidora/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// CreatePlaylist creates an empty playlist. Names are unique per platform,
// compared case-insensitively.
func (s *PlaylistService) CreatePlaylist(userID int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, errno.RequestErr.WithMessage("Playlist name and description are required")
	}
	taken, err := db.PlaylistNameExists(s.ctx, name, 0)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if taken {
		return nil, errno.ConflictErr.WithMessage("A playlist with this name already exists")
	}

	playlist := &model.Playlist{
		PlaylistID:  utils.GenerateID(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errno.MysqlErr
	}
	return playlist, nil
}

// GetPlaylist returns the playlist with its owner profile and the published
// videos it contains, in playlist order.
func (s *PlaylistService) GetPlaylist(playlistID, viewer int64) (*model.PlaylistView, error) {
	playlist, err := s.loadPlaylist(playlistID)
	if err != nil {
		return nil, err
	}
	owner, err := db.GetUserByID(s.ctx, playlist.UserID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	rows, err := db.ListPlaylistVideos(s.ctx, playlistID, viewer)
	if err != nil {
		return nil, errno.MysqlErr
	}

	videos := make([]*model.VideoView, 0, len(rows))
	var totalViews int64
	for _, row := range rows {
		videos = append(videos, row.ToView())
		totalViews += row.VisitCount
	}

	return &model.PlaylistView{
		PlaylistID:  playlist.PlaylistID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner: model.UserProfile{
			UserID:    owner.UserID,
			UserName:  owner.UserName,
			FullName:  owner.FullName,
			AvatarURL: owner.AvatarURL,
		},
		Videos:     videos,
		VideoCount: int64(len(videos)),
		TotalViews: totalViews,
		CreatedAt:  playlist.CreatedAt,
	}, nil
}

// UpdatePlaylist patches the name and description. Only the owner may
// update, and a renamed playlist must not collide with another name.
func (s *PlaylistService) UpdatePlaylist(playlistID, userID int64, name, description string) (*model.Playlist, error) {
	playlist, err := s.loadPlaylist(playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.UserID != userID {
		return nil, errno.PermissionErr.WithMessage("Only the owner can update this playlist")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if name = strings.TrimSpace(name); name != "" {
		taken, err := db.PlaylistNameExists(s.ctx, name, playlistID)
		if err != nil {
			return nil, errno.MysqlErr
		}
		if taken {
			return nil, errno.ConflictErr.WithMessage("A playlist with this name already exists")
		}
		updates["name"] = name
		playlist.Name = name
	}
	if description = strings.TrimSpace(description); description != "" {
		updates["description"] = description
		playlist.Description = description
	}
	if err := db.UpdatePlaylist(s.ctx, playlistID, updates); err != nil {
		return nil, errno.MysqlErr
	}
	return playlist, nil
}

// DeletePlaylist removes the playlist and its memberships. The videos
// themselves are untouched.
func (s *PlaylistService) DeletePlaylist(playlistID, userID int64) error {
	playlist, err := s.loadPlaylist(playlistID)
	if err != nil {
		return err
	}
	if playlist.UserID != userID {
		return errno.PermissionErr.WithMessage("Only the owner can delete this playlist")
	}
	if err := db.DeletePlaylist(s.ctx, playlistID); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// AddVideo appends a video to the playlist. Adding a video that is already
// in the playlist is a no-op.
func (s *PlaylistService) AddVideo(playlistID, videoID, userID int64) (bool, error) {
	playlist, err := s.loadPlaylist(playlistID)
	if err != nil {
		return false, err
	}
	if playlist.UserID != userID {
		return false, errno.PermissionErr.WithMessage("Only the owner can modify this playlist")
	}
	exists, err := db.CheckVideoExistByID(s.ctx, videoID)
	if err != nil {
		return false, errno.MysqlErr
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("Video does not exist")
	}
	added, err := db.AddVideoToPlaylist(s.ctx, playlistID, videoID)
	if err != nil {
		return false, errno.MysqlErr
	}
	return added, nil
}

// RemoveVideo drops a video from the playlist.
func (s *PlaylistService) RemoveVideo(playlistID, videoID, userID int64) error {
	playlist, err := s.loadPlaylist(playlistID)
	if err != nil {
		return err
	}
	if playlist.UserID != userID {
		return errno.PermissionErr.WithMessage("Only the owner can modify this playlist")
	}
	if err := db.RemoveVideoFromPlaylist(s.ctx, playlistID, videoID); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// ListUserPlaylists returns the user's playlists with their video counts,
// newest first.
func (s *PlaylistService) ListUserPlaylists(userID int64) ([]*model.PlaylistView, error) {
	exists, err := db.CheckUserExistByID(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	owner, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}
	playlists, err := db.ListUserPlaylists(s.ctx, userID)
	if err != nil {
		return nil, errno.MysqlErr
	}

	ownerProfile := model.UserProfile{
		UserID:    owner.UserID,
		UserName:  owner.UserName,
		FullName:  owner.FullName,
		AvatarURL: owner.AvatarURL,
	}
	views := make([]*model.PlaylistView, 0, len(playlists))
	for _, playlist := range playlists {
		count, err := db.GetPlaylistVideoCount(s.ctx, playlist.PlaylistID)
		if err != nil {
			return nil, errno.MysqlErr
		}
		views = append(views, &model.PlaylistView{
			PlaylistID:  playlist.PlaylistID,
			Name:        playlist.Name,
			Description: playlist.Description,
			Owner:       ownerProfile,
			VideoCount:  count,
			CreatedAt:   playlist.CreatedAt,
		})
	}
	return views, nil
}

func (s *PlaylistService) loadPlaylist(playlistID int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.NotFoundErr.WithMessage("Playlist does not exist")
		}
		return nil, errno.MysqlErr
	}
	return playlist, nil
}
