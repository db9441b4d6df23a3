package services

import (
	"context"
	"errors"
	"testing"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/imagehost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logconfig.InitLogger()
	m.Run()
}

type fakeImageRepo struct {
	urls []string
	err  error
}

func (f *fakeImageRepo) CollectImageURLs(ctx context.Context) ([]string, error) {
	return f.urls, f.err
}

type fakeImageHost struct {
	images  []imagehost.RemoteImage
	listErr error

	failKeys map[string]error
	deleted  []string
}

func (f *fakeImageHost) ListImages(ctx context.Context) ([]imagehost.RemoteImage, error) {
	return f.images, f.listErr
}

func (f *fakeImageHost) DeleteImage(ctx context.Context, key string) error {
	if err, ok := f.failKeys[key]; ok {
		return err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func TestReconcileImagesDeletesOnlyOrphans(t *testing.T) {
	repo := &fakeImageRepo{urls: []string{
		"https://img.example.com/u/cover-1.jpg",
		"https://img.example.com/u/gallery-2.jpg",
	}}
	host := &fakeImageHost{images: []imagehost.RemoteImage{
		{Key: "cover-1.jpg"},
		{Key: "gallery-2.jpg"},
		{Key: "orphan-3.jpg"},
	}}

	svc := NewCleanupServiceWithRepo(repo, host)
	report, err := svc.ReconcileImages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalSeen)
	assert.Equal(t, 2, report.TotalReferenced)
	assert.Equal(t, 1, report.Orphans)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, []string{"orphan-3.jpg"}, host.deleted)
}

func TestReconcileImagesSurvivesPartialFailure(t *testing.T) {
	repo := &fakeImageRepo{}
	host := &fakeImageHost{
		images: []imagehost.RemoteImage{
			{Key: "a.jpg"},
			{Key: "b.jpg"},
			{Key: "c.jpg"},
		},
		failKeys: map[string]error{"b.jpg": errors.New("storage timeout")},
	}

	svc := NewCleanupServiceWithRepo(repo, host)
	report, err := svc.ReconcileImages(context.Background())
	require.NoError(t, err)

	// One failed delete is recorded, the rest of the batch still runs.
	assert.Equal(t, 3, report.Orphans)
	assert.Equal(t, 2, report.Deleted)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "b.jpg")
	assert.ElementsMatch(t, []string{"a.jpg", "c.jpg"}, host.deleted)
}

func TestReferencedImageKeysSkipsForeignURLs(t *testing.T) {
	repo := &fakeImageRepo{urls: []string{
		"https://img.example.com/u/kept.jpg",
		"https://img.example.com/",
		"",
	}}

	svc := NewCleanupServiceWithRepo(repo, &fakeImageHost{})
	keys, err := svc.ReferencedImageKeys(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{"kept.jpg": {}}, keys)
}

func TestReconcileImagesPropagatesListFailure(t *testing.T) {
	svc := NewCleanupServiceWithRepo(&fakeImageRepo{}, &fakeImageHost{listErr: errors.New("unauthorized")})

	report, err := svc.ReconcileImages(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
}
