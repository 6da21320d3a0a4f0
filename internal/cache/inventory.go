package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix         = "user:%d"
	FilmKeyPrefix         = "film:%d"
	PopularFilmsKeyPrefix = "films:popular:%d"
	PopularFilmsPattern   = "films:popular:*"
)

const (
	UserTTL         = 5 * time.Minute
	FilmTTL         = 30 * time.Minute
	PopularFilmsTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FilmKey(filmID uint) string {
	return fmt.Sprintf(FilmKeyPrefix, filmID)
}

func PopularFilmsKey(count int) string {
	return fmt.Sprintf(PopularFilmsKeyPrefix, count)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateFilm(ctx context.Context, filmID uint) {
	Invalidate(ctx, FilmKey(filmID))
}

// InvalidatePopularFilms drops every cached popularity ranking. Rankings
// are cached per requested count, so the keys are walked by pattern.
func InvalidatePopularFilms(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, PopularFilmsPattern, 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
