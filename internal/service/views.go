package service

import (
	"mypage/profilehub/internal/model"
	"mypage/profilehub/internal/relclock"
)

// PostView is a post with its timestamps rendered for display.
type PostView struct {
	model.Post
	Date     string        `json:"date"`
	Comments []CommentView `json:"comments"`
}

type CommentView struct {
	model.Comment
	Date string `json:"date"`
}

type MessageView struct {
	model.Message
	Date string `json:"date"`
}

type NewsView struct {
	model.NewsItem
	Date string `json:"date"`
}

func postView(p model.Post, clock *relclock.Formatter, now int64) PostView {
	comments := make([]CommentView, len(p.Comments))
	for i, c := range p.Comments {
		comments[i] = CommentView{Comment: c, Date: clock.Format(c.CreatedAt, now)}
	}
	return PostView{Post: p, Date: clock.Format(p.CreatedAt, now), Comments: comments}
}
