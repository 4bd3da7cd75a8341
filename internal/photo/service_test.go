package photo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshare/gearshare-backend/internal/item"
)

type fakeRepo struct {
	photos    map[string]*Photo
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{photos: map[string]*Photo{}}
}

func (r *fakeRepo) Create(ctx context.Context, p *Photo) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.photos[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Photo, error) {
	if p, ok := r.photos[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) ListByItem(ctx context.Context, itemID string) ([]*Photo, error) {
	out := []*Photo{}
	for _, p := range r.photos {
		if p.ItemID == itemID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.photos, id)
	return nil
}

type fakeItems struct {
	items map[string]*item.Item
}

func (f *fakeItems) GetByID(ctx context.Context, id string) (*item.Item, error) {
	if it, ok := f.items[id]; ok {
		return it, nil
	}
	return nil, item.ErrNotFound
}

// memStorage keeps blobs in a map.
type memStorage struct {
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: map[string][]byte{}}
}

func (s *memStorage) Save(ctx context.Context, path string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.blobs[path] = data
	return nil
}

func (s *memStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.blobs[path]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Remove(ctx context.Context, path string) error {
	delete(s.blobs, path)
	return nil
}

// makeFileHeader builds a real multipart.FileHeader by round-tripping a form.
func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func fixture() (*fakeRepo, *memStorage, Service) {
	repo := newFakeRepo()
	store := newMemStorage()
	items := &fakeItems{items: map[string]*item.Item{
		"item-1": {ID: "item-1", OwnerID: "owner-1", Name: "Drill"},
	}}
	return repo, store, NewService(repo, items, store)
}

func TestUploadStoresPhotoAndThumbnail(t *testing.T) {
	repo, store, svc := fixture()
	header := makeFileHeader(t, "drill.png", "image/png", pngBytes(t))

	p, err := svc.Upload(context.Background(), header, "item-1", "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "item-1", p.ItemID)
	assert.Equal(t, "drill.png", p.Filename)
	assert.Contains(t, store.blobs, p.StoragePath)
	require.NotNil(t, p.ThumbnailPath)
	assert.Contains(t, store.blobs, *p.ThumbnailPath)
	assert.Contains(t, repo.photos, p.ID)
}

func TestUploadOwnerOnly(t *testing.T) {
	_, _, svc := fixture()
	header := makeFileHeader(t, "drill.png", "image/png", pngBytes(t))

	_, err := svc.Upload(context.Background(), header, "item-1", "stranger")
	assert.ErrorIs(t, err, ErrOnlyOwnerCanUpload)
}

func TestUploadRejectsNonImage(t *testing.T) {
	_, _, svc := fixture()
	header := makeFileHeader(t, "notes.txt", "text/plain", []byte("hello"))

	_, err := svc.Upload(context.Background(), header, "item-1", "owner-1")
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestUploadUnknownItem(t *testing.T) {
	_, _, svc := fixture()
	header := makeFileHeader(t, "drill.png", "image/png", pngBytes(t))

	_, err := svc.Upload(context.Background(), header, "nope", "owner-1")
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestUploadCleansUpWhenRecordFails(t *testing.T) {
	repo, store, svc := fixture()
	repo.createErr = errors.New("db down")
	header := makeFileHeader(t, "drill.png", "image/png", pngBytes(t))

	_, err := svc.Upload(context.Background(), header, "item-1", "owner-1")
	require.Error(t, err)
	assert.Empty(t, store.blobs, "orphaned blobs must be removed")
}

func TestDownloadThumbnailMissing(t *testing.T) {
	repo, _, svc := fixture()
	repo.photos["p-1"] = &Photo{ID: "p-1", ItemID: "item-1", StoragePath: "upload/p-/p-1.png"}

	_, _, err := svc.DownloadThumbnail(context.Background(), "p-1")
	assert.ErrorIs(t, err, ErrNoThumbnail)
}

func TestDeleteOwnerOnly(t *testing.T) {
	repo, store, svc := fixture()
	header := makeFileHeader(t, "drill.png", "image/png", pngBytes(t))

	p, err := svc.Upload(context.Background(), header, "item-1", "owner-1")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), p.ID, "stranger")
	assert.ErrorIs(t, err, ErrOnlyOwnerCanUpload)

	require.NoError(t, svc.Delete(context.Background(), p.ID, "owner-1"))
	assert.Empty(t, store.blobs)
	assert.NotContains(t, repo.photos, p.ID)
}
