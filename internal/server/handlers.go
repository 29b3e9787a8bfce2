package server

import (
	"net/http"
	"time"

	"newsverify/internal/metrics"
	"newsverify/internal/model"
	"newsverify/internal/store"

	"github.com/gin-gonic/gin"
)

// newsView is a localized item decorated with its derived engagement state.
type newsView struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	Summary   string           `json:"summary"`
	Content   string           `json:"content"`
	Reporter  string           `json:"reporter"`
	CreatedAt time.Time        `json:"created_at"`
	ImageURL  string           `json:"image_url,omitempty"`
	Source    string           `json:"source,omitempty"`
	Link      string           `json:"link,omitempty"`
	Status    model.Status     `json:"status"`
	Counts    model.VoteCounts `json:"counts"`
	Likes     int              `json:"likes"`
}

func (s *Server) view(n model.News) newsView {
	l := store.Localize(n)
	return newsView{
		ID:        l.ID,
		Title:     l.Title,
		Summary:   l.Summary,
		Content:   l.Content,
		Reporter:  l.Reporter,
		CreatedAt: l.CreatedAt,
		ImageURL:  l.ImageURL,
		Source:    l.Source,
		Link:      l.Link,
		Status:    s.store.Status(n.ID),
		Counts:    s.store.VoteCounts(n.ID),
		Likes:     s.store.Likes(n.ID),
	}
}

func (s *Server) listNews(c *gin.Context) {
	items := s.store.News()
	out := make([]newsView, 0, len(items))
	for _, n := range items {
		out = append(out, s.view(n))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getNews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	n, found := s.store.NewsByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "news not found"})
		return
	}
	c.JSON(http.StatusOK, s.view(n))
}

type addNewsRequest struct {
	Title    string `json:"title" binding:"required"`
	Summary  string `json:"summary" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Reporter string `json:"reporter" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (s *Server) addNews(c *gin.Context) {
	var req addNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := s.store.AddNews(store.NewsInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		Reporter: req.Reporter,
		ImageURL: req.ImageURL,
	})
	metrics.NewsReported.Inc()
	c.JSON(http.StatusCreated, s.view(item))
}

type addVoteRequest struct {
	Choice   model.Choice `json:"choice" binding:"required"`
	Comment  string       `json:"comment"`
	ImageURL string       `json:"image_url"`
	Voter    string       `json:"voter"`
}

func (s *Server) addVote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req addVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Choice.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "choice must be fake or not_fake"})
		return
	}
	v := s.store.AddVote(c.Request.Context(), store.VoteInput{
		NewsID:   id,
		Choice:   req.Choice,
		Comment:  req.Comment,
		ImageURL: req.ImageURL,
		Voter:    req.Voter,
	})
	metrics.VotesCast.WithLabelValues(string(req.Choice)).Inc()
	c.JSON(http.StatusCreated, gin.H{
		"vote":   v,
		"counts": s.store.VoteCounts(id),
		"status": s.store.Status(id),
	})
}

func (s *Server) getComments(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comments := s.store.Comments(id)
	if comments == nil {
		comments = []model.Vote{}
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) addLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s.store.AddLike(c.Request.Context(), id)
	metrics.LikesChanged.WithLabelValues("like").Inc()
	c.JSON(http.StatusOK, gin.H{"likes": s.store.Likes(id)})
}

func (s *Server) removeLike(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s.store.RemoveLike(c.Request.Context(), id)
	metrics.LikesChanged.WithLabelValues("unlike").Inc()
	c.JSON(http.StatusOK, gin.H{"likes": s.store.Likes(id)})
}

func (s *Server) clearImported(c *gin.Context) {
	s.store.ClearImported(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"news": len(s.store.News())})
}

func (s *Server) removeAllNews(c *gin.Context) {
	s.store.RemoveAllNews(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"news": 0})
}

type resetRequest struct {
	RegenerateNews *bool `json:"regenerate_news"`
}

func (s *Server) resetMockData(c *gin.Context) {
	var req resetRequest
	_ = c.ShouldBindJSON(&req) // empty body means full reset
	regenerate := true
	if req.RegenerateNews != nil {
		regenerate = *req.RegenerateNews
	}
	s.prog.Start()
	s.store.ResetMockData(c.Request.Context(), store.ResetOptions{RegenerateNews: regenerate})
	s.prog.Finish()
	c.JSON(http.StatusOK, gin.H{"news": len(s.store.News()), "regenerated": regenerate})
}
