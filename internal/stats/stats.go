// Package stats provides pure aggregations over blog lists.
// All functions are side-effect free and operate on lists already loaded
// into memory.
package stats

import "github.com/bloglist/bloglist/internal/model"

// AuthorBlogs names the author with the most posts.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes names the author with the highest combined like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums likes across all blogs. Returns 0 for an empty list.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list. Ties keep the earliest blog in list order.
func FavoriteBlog(blogs []model.Blog) *model.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// MostBlogs returns the author with the most posts, or nil for an empty
// list. Ties resolve to the lexicographically smallest author name so the
// result does not depend on map iteration order.
func MostBlogs(blogs []model.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int, len(blogs))
	for _, b := range blogs {
		counts[b.Author]++
	}

	top := AuthorBlogs{Blogs: -1}
	for author, n := range counts {
		if n > top.Blogs || (n == top.Blogs && author < top.Author) {
			top = AuthorBlogs{Author: author, Blogs: n}
		}
	}
	return &top
}

// MostLikes returns the author with the highest summed like count, or nil
// for an empty list. Same tie-break as MostBlogs.
func MostLikes(blogs []model.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	sums := make(map[string]int, len(blogs))
	for _, b := range blogs {
		sums[b.Author] += b.Likes
	}

	var top *AuthorLikes
	for author, likes := range sums {
		if top == nil || likes > top.Likes || (likes == top.Likes && author < top.Author) {
			top = &AuthorLikes{Author: author, Likes: likes}
		}
	}
	return top
}
