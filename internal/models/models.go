package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	AvatarURL    string    `json:"avatarUrl" db:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID       string    `json:"postId" db:"post_id"`
	AuthorID     string    `json:"authorId" db:"author_id"`
	AuthorName   string    `json:"authorName" db:"author_name"`
	AuthorAvatar string    `json:"authorAvatar" db:"author_avatar"`
	Content      string    `json:"text" db:"content"`
	Likes        []Like    `json:"likes" db:"-"`
	Comments     []Comment `json:"comments" db:"-"`
	Version      int64     `json:"-" db:"version"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Like - одна отметка "нравится"; не больше одной на пользователя для поста
type Like struct {
	UserID    string    `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID    string    `json:"commentId" db:"comment_id"`
	AuthorID     string    `json:"authorId" db:"author_id"`
	AuthorName   string    `json:"authorName" db:"author_name"`
	AuthorAvatar string    `json:"authorAvatar" db:"author_avatar"`
	Content      string    `json:"text" db:"content"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
