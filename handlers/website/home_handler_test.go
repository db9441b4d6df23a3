package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logconfig.InitLogger()
	m.Run()
}

type fakePropertyService struct {
	services.IPropertyService
	properties []models.Property
	err        error
}

func (f *fakePropertyService) GetPropertiesByIDs(ctx context.Context, ids []uint) ([]models.Property, error) {
	return f.properties, f.err
}

type fakePostService struct {
	services.IPostService
	posts []models.Post
	err   error
}

func (f *fakePostService) GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error) {
	return f.posts, f.err
}

func sectionWithPayload(t *testing.T, kind string, p models.SectionPayload) models.HomeSection {
	t.Helper()
	sec := models.HomeSection{Kind: kind}
	require.NoError(t, sec.EncodePayload(p))
	return sec
}

func TestResolveSectionsLoadsReferencedContent(t *testing.T) {
	prop := models.Property{Name: "Saigon Tower"}
	prop.ID = 4
	h := &HomeHandler{
		propertyService: &fakePropertyService{properties: []models.Property{prop}},
		postService:     &fakePostService{},
	}

	sections := []models.HomeSection{
		sectionWithPayload(t, models.SectionKindProperty, models.SectionPayload{PropertyIDs: []uint{4}}),
		sectionWithPayload(t, models.SectionKindMarkup, models.SectionPayload{Markup: "<p>Xin chào</p>"}),
	}

	views := h.resolveSections(context.Background(), sections)
	require.Len(t, views, 2)
	require.Len(t, views[0].Properties, 1)
	assert.Equal(t, "Saigon Tower", views[0].Properties[0].Name)
	assert.Equal(t, "<p>Xin chào</p>", views[1].Markup)
}

func TestResolveSectionsRendersEmptyOnFetchFailure(t *testing.T) {
	h := &HomeHandler{
		propertyService: &fakePropertyService{err: errors.New("connection refused")},
		postService:     &fakePostService{err: errors.New("connection refused")},
	}

	sections := []models.HomeSection{
		sectionWithPayload(t, models.SectionKindProperty, models.SectionPayload{PropertyIDs: []uint{1}}),
		sectionWithPayload(t, models.SectionKindPost, models.SectionPayload{PostIDs: []uint{2}}),
	}

	// The page still renders both sections, just without content.
	views := h.resolveSections(context.Background(), sections)
	require.Len(t, views, 2)
	assert.Empty(t, views[0].Properties)
	assert.Empty(t, views[1].Posts)
}

func TestResolveSectionsSkipsCorruptPayload(t *testing.T) {
	h := &HomeHandler{
		propertyService: &fakePropertyService{},
		postService:     &fakePostService{},
	}

	sections := []models.HomeSection{
		{Kind: models.SectionKindProperty, Payload: []byte("not json")},
		sectionWithPayload(t, models.SectionKindMarkup, models.SectionPayload{Markup: "<hr>"}),
	}

	views := h.resolveSections(context.Background(), sections)
	require.Len(t, views, 1)
	assert.Equal(t, models.SectionKindMarkup, views[0].Kind)
}
