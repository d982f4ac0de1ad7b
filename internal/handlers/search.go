package handlers

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/pkg/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// SearchHandler backs the header search box: members, publications and
// published news, matched in both languages.
type SearchHandler struct {
	db *gorm.DB
}

func NewSearchHandler(db *gorm.DB) *SearchHandler {
	return &SearchHandler{db: db}
}

type SearchResult struct {
	Members      []MemberSearchItem      `json:"members"`
	Publications []PublicationSearchItem `json:"publications"`
	News         []NewsSearchItem        `json:"news"`
	Total        int                     `json:"total"`
}

type MemberSearchItem struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	RolePT string `json:"role_pt"`
	RoleEN string `json:"role_en"`
}

type PublicationSearchItem struct {
	ID      uint   `json:"id"`
	TitlePT string `json:"title_pt"`
	TitleEN string `json:"title_en"`
	Journal string `json:"journal"`
	Year    int    `json:"year"`
}

type NewsSearchItem struct {
	ID      uint   `json:"id"`
	TitlePT string `json:"title_pt"`
	TitleEN string `json:"title_en"`
	Date    string `json:"date"`
}

// foldSearchText lowercases with Unicode case folding and strips combining
// marks, so "Ágata", "ÁGATA" and "agata" compare equal.
func foldSearchText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// searchMatcher tests fields for a literal substring; no character of the
// query is a wildcard.
type searchMatcher struct {
	needle string
}

func newSearchMatcher(q string) searchMatcher {
	return searchMatcher{needle: foldSearchText(q)}
}

func (m searchMatcher) match(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(foldSearchText(f), m.needle) {
			return true
		}
	}
	return false
}

// Search performs an accent- and case-insensitive substring search.
// Matching runs in Go because SQL LOWER and LIKE only fold ASCII on sqlite.
// GET /api/search?q=&limit=
func (h *SearchHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if len([]rune(q)) < 2 {
		response.BadRequest(c, "search query must be at least 2 characters")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	m := newSearchMatcher(q)
	result := SearchResult{
		Members:      []MemberSearchItem{},
		Publications: []PublicationSearchItem{},
		News:         []NewsSearchItem{},
	}

	var members []models.Member
	if err := h.db.
		Select("id", "name", "type", "role_pt", "role_en").
		Order("order_index ASC").Order("id ASC").
		Find(&members).Error; err != nil {
		response.Error(c, err)
		return
	}
	for _, mb := range members {
		if len(result.Members) == limit {
			break
		}
		if !m.match(mb.Name, mb.RolePT, mb.RoleEN) {
			continue
		}
		result.Members = append(result.Members, MemberSearchItem{
			ID:     mb.ID,
			Name:   mb.Name,
			Type:   mb.Type,
			RolePT: mb.RolePT,
			RoleEN: mb.RoleEN,
		})
	}

	var pubs []models.Publication
	if err := h.db.
		Select("id", "title_pt", "title_en", "journal", "year", "authors").
		Order("year DESC").Order("id DESC").
		Find(&pubs).Error; err != nil {
		response.Error(c, err)
		return
	}
	for _, p := range pubs {
		if len(result.Publications) == limit {
			break
		}
		if !m.match(p.TitlePT, p.TitleEN, p.Authors, p.Journal) {
			continue
		}
		result.Publications = append(result.Publications, PublicationSearchItem{
			ID:      p.ID,
			TitlePT: p.TitlePT,
			TitleEN: p.TitleEN,
			Journal: p.Journal,
			Year:    p.Year,
		})
	}

	var news []models.News
	if err := h.db.
		Select("id", "title_pt", "title_en", "content_pt", "content_en", "date").
		Where("status = ?", models.NewsStatusPublished).
		Order("date DESC").Order("id DESC").
		Find(&news).Error; err != nil {
		response.Error(c, err)
		return
	}
	for _, n := range news {
		if len(result.News) == limit {
			break
		}
		if !m.match(n.TitlePT, n.TitleEN, n.ContentPT, n.ContentEN) {
			continue
		}
		result.News = append(result.News, NewsSearchItem{
			ID:      n.ID,
			TitlePT: n.TitlePT,
			TitleEN: n.TitleEN,
			Date:    n.Date,
		})
	}

	result.Total = len(result.Members) + len(result.Publications) + len(result.News)
	response.Success(c, result)
}
