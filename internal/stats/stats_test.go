package stats

import (
	"testing"

	"github.com/bloglist/bloglist/internal/model"
)

var singleBlog = []model.Blog{
	{
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "https://homepages.cwi.nl/~storm/teaching/reader/Dijkstra68.pdf",
		Likes:  5,
	},
}

var multipleBlogs = []model.Blog{
	{Title: "First blog", Author: "Author One", URL: "http://example.com/1", Likes: 7},
	{Title: "Second blog", Author: "Author Two", URL: "http://example.com/2", Likes: 5},
	{Title: "Third blog", Author: "Author Three", URL: "http://example.com/3", Likes: 12},
}

func TestTotalLikes_Empty(t *testing.T) {
	t.Parallel()

	if got := TotalLikes(nil); got != 0 {
		t.Errorf("TotalLikes(nil) = %d, want 0", got)
	}
	if got := TotalLikes([]model.Blog{}); got != 0 {
		t.Errorf("TotalLikes([]) = %d, want 0", got)
	}
}

func TestTotalLikes_SingleBlog(t *testing.T) {
	t.Parallel()

	if got := TotalLikes(singleBlog); got != 5 {
		t.Errorf("TotalLikes = %d, want 5", got)
	}
}

func TestTotalLikes_MultipleBlogs(t *testing.T) {
	t.Parallel()

	if got := TotalLikes(multipleBlogs); got != 24 {
		t.Errorf("TotalLikes = %d, want 24", got)
	}
}

func TestFavoriteBlog_Empty(t *testing.T) {
	t.Parallel()

	if got := FavoriteBlog(nil); got != nil {
		t.Errorf("FavoriteBlog(nil) = %+v, want nil", got)
	}
}

func TestFavoriteBlog_MultipleBlogs(t *testing.T) {
	t.Parallel()

	got := FavoriteBlog(multipleBlogs)
	if got == nil {
		t.Fatal("FavoriteBlog returned nil")
	}
	if got.Likes != 12 {
		t.Errorf("Likes = %d, want 12", got.Likes)
	}
	if got.Title != "Third blog" {
		t.Errorf("Title = %q, want %q", got.Title, "Third blog")
	}
}

func TestFavoriteBlog_TieKeepsFirst(t *testing.T) {
	t.Parallel()

	blogs := []model.Blog{
		{Title: "A", Author: "One", Likes: 9},
		{Title: "B", Author: "Two", Likes: 9},
	}

	got := FavoriteBlog(blogs)
	if got == nil {
		t.Fatal("FavoriteBlog returned nil")
	}
	if got.Title != "A" {
		t.Errorf("Title = %q, want %q (first encountered wins ties)", got.Title, "A")
	}
}

func TestMostBlogs_Empty(t *testing.T) {
	t.Parallel()

	if got := MostBlogs(nil); got != nil {
		t.Errorf("MostBlogs(nil) = %+v, want nil", got)
	}
}

func TestMostBlogs_TopAuthor(t *testing.T) {
	t.Parallel()

	blogs := []model.Blog{
		{Title: "a", Author: "Robert C. Martin", Likes: 1},
		{Title: "b", Author: "Edsger W. Dijkstra", Likes: 2},
		{Title: "c", Author: "Robert C. Martin", Likes: 3},
		{Title: "d", Author: "Edsger W. Dijkstra", Likes: 4},
		{Title: "e", Author: "Robert C. Martin", Likes: 5},
	}

	got := MostBlogs(blogs)
	if got == nil {
		t.Fatal("MostBlogs returned nil")
	}
	want := AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}
	if *got != want {
		t.Errorf("MostBlogs = %+v, want %+v", *got, want)
	}
}

func TestMostBlogs_TieBreaksLexicographically(t *testing.T) {
	t.Parallel()

	blogs := []model.Blog{
		{Title: "a", Author: "Zeta"},
		{Title: "b", Author: "Alpha"},
		{Title: "c", Author: "Zeta"},
		{Title: "d", Author: "Alpha"},
	}

	got := MostBlogs(blogs)
	if got == nil {
		t.Fatal("MostBlogs returned nil")
	}
	if got.Author != "Alpha" {
		t.Errorf("Author = %q, want %q (smallest name wins ties)", got.Author, "Alpha")
	}
	if got.Blogs != 2 {
		t.Errorf("Blogs = %d, want 2", got.Blogs)
	}
}

func TestMostLikes_Empty(t *testing.T) {
	t.Parallel()

	if got := MostLikes(nil); got != nil {
		t.Errorf("MostLikes(nil) = %+v, want nil", got)
	}
}

func TestMostLikes_TopAuthor(t *testing.T) {
	t.Parallel()

	blogs := []model.Blog{
		{Title: "a", Author: "Edsger W. Dijkstra", Likes: 5},
		{Title: "b", Author: "Robert C. Martin", Likes: 10},
		{Title: "c", Author: "Edsger W. Dijkstra", Likes: 12},
	}

	got := MostLikes(blogs)
	if got == nil {
		t.Fatal("MostLikes returned nil")
	}
	want := AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}
	if *got != want {
		t.Errorf("MostLikes = %+v, want %+v", *got, want)
	}
}

func TestMostLikes_TieBreaksLexicographically(t *testing.T) {
	t.Parallel()

	blogs := []model.Blog{
		{Title: "a", Author: "Zeta", Likes: 8},
		{Title: "b", Author: "Alpha", Likes: 3},
		{Title: "c", Author: "Alpha", Likes: 5},
	}

	got := MostLikes(blogs)
	if got == nil {
		t.Fatal("MostLikes returned nil")
	}
	if got.Author != "Alpha" {
		t.Errorf("Author = %q, want %q (smallest name wins ties)", got.Author, "Alpha")
	}
	if got.Likes != 8 {
		t.Errorf("Likes = %d, want 8", got.Likes)
	}
}
