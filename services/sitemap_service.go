package services

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"gorm.io/gorm"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type ISitemapService interface {
	BuildSitemap(ctx context.Context) ([]byte, error)
}

type SitemapService struct {
	db *gorm.DB
}

func NewSitemapService(db *gorm.DB) ISitemapService {
	return &SitemapService{db: db}
}

// BuildSitemap renders sitemap.xml from the public pages: home, listing
// indexes, property details and published posts.
func (s *SitemapService) BuildSitemap(ctx context.Context) ([]byte, error) {
	base := envconfig.String("APP_BASE_URL", "https://thewellingtonoffices.com")

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", ChangeFreq: "daily", Priority: "1.0"},
			{Loc: base + "/toa-nha", ChangeFreq: "daily", Priority: "0.9"},
			{Loc: base + "/van-phong", ChangeFreq: "daily", Priority: "0.9"},
			{Loc: base + "/tin-tuc", ChangeFreq: "weekly", Priority: "0.6"},
		},
	}

	var properties []models.Property
	if err := s.db.WithContext(ctx).Select("slug", "updated_at").Find(&properties).Error; err != nil {
		return nil, err
	}
	for _, p := range properties {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/toa-nha/" + p.Slug,
			LastMod:    p.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Select("slug", "updated_at").
		Where("published_at IS NOT NULL").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/tin-tuc/" + p.Slug,
			LastMod:    p.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "monthly",
			Priority:   "0.5",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
