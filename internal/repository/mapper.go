package repository

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"fmt"
	"strconv"

	"github.com/jinzhu/copier"
)

// toPost 服务端帖子字段映射
func toPost(d *dto.PostDTO) model.Post {
	p := model.Post{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		Type:    d.PostType,
		Author: model.Author{
			ID:        d.Author.ID,
			Username:  d.Author.Username,
			AvatarURL: d.Author.AvatarURL,
			FarmType:  d.Author.FarmType,
		},
		CreatedAt:    d.CreatedAt,
		LikeCount:    d.LikeCountCalc,
		CommentCount: d.CommentCountCalc,
		ViewCount:    d.ViewCount,
		IsLiked:      d.IsLiked,
	}
	for _, t := range d.Tags {
		p.Tags = append(p.Tags, t.Name)
	}
	for _, m := range d.MediaFiles {
		p.Media = append(p.Media, model.Media{
			ID:        m.ID,
			Type:      m.MediaType,
			URL:       m.FileURL,
			Thumbnail: m.ThumbnailURL,
			Alt:       m.AltText,
		})
	}
	return p
}

func toPosts(ds []dto.PostDTO) []model.Post {
	out := make([]model.Post, 0, len(ds))
	for i := range ds {
		out = append(out, toPost(&ds[i]))
	}
	return out
}

func toComment(d *dto.CommentDTO) model.Comment {
	return model.Comment{
		ID:         d.ID,
		PostID:     d.PostID,
		Author:     authorString(d.Author),
		AuthorName: d.AuthorName,
		Content:    d.Content,
		ParentID:   d.ParentID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// authorString author 可能是 id、用户名或嵌套对象
func authorString(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case float64:
		return strconv.FormatInt(int64(a), 10)
	case map[string]any:
		if name, ok := a["username"].(string); ok {
			return name
		}
		if id, ok := a["id"]; ok {
			return authorString(id)
		}
	}
	return fmt.Sprint(v)
}

func toFollowEdge(d *dto.FollowDTO) model.FollowEdge {
	return model.FollowEdge{EdgeID: d.ID, FollowerID: d.Follower, FolloweeID: d.Following}
}

func toSuggestedUsers[T any](ds []T) ([]model.SuggestedUser, error) {
	out := make([]model.SuggestedUser, 0, len(ds))
	if err := copier.Copy(&out, &ds); err != nil {
		return nil, err
	}
	return out, nil
}
