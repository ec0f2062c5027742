package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"photovault/internal/domain/dto"
	"photovault/internal/domain/errs"
	"photovault/internal/domain/model"
	repoDB "photovault/internal/domain/repository/database"
)

// In-memory doubles for the repository boundaries. Each one mirrors the
// observable contract of its real counterpart, including error sentinels and
// set semantics, so workflow tests exercise the same paths the handlers do.

type fakeBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	failWrite bool
	failRm    bool
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func blobKey(owner, imageID string) string {
	return owner + "/" + imageID
}

func (f *fakeBlobs) Upload(_ context.Context, owner, imageID string, body io.Reader,
	_ int64, _ string,
) (string, error) {
	if f.failWrite {
		return "", errors.New("object store unavailable")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[blobKey(owner, imageID)] = data

	return fmt.Sprintf("http://blobs.local/%s/%s", owner, imageID), nil
}

func (f *fakeBlobs) Remove(_ context.Context, owner, imageID string) error {
	if f.failRm {
		return errors.New("object store unavailable")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, blobKey(owner, imageID))

	return nil
}

func (f *fakeBlobs) has(owner, imageID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[blobKey(owner, imageID)]

	return ok
}

type fakeImages struct {
	mu        sync.Mutex
	records   map[string]model.Image
	failWrite bool
}

func newFakeImages() *fakeImages {
	return &fakeImages{records: make(map[string]model.Image)}
}

func (f *fakeImages) Write(_ context.Context, image *model.Image) error {
	if f.failWrite {
		return errors.New("metadata store unavailable")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[image.ID] = *image

	return nil
}

func (f *fakeImages) GetByID(_ context.Context, owner, id string) (*model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	img, ok := f.records[id]
	if !ok || img.Owner != owner {
		return nil, errs.ErrNotFound
	}

	return &img, nil
}

func (f *fakeImages) ListByOwner(_ context.Context, owner string, cursor *repoDB.FeedCursor,
	limit int,
) ([]model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Image
	for _, img := range f.records {
		if img.Owner != owner {
			continue
		}
		if cursor != nil {
			after := img.UploadedAt.Before(cursor.UploadedAt) ||
				(img.UploadedAt.Equal(cursor.UploadedAt) && img.ID < cursor.ID)
			if !after {
				continue
			}
		}
		out = append(out, img)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].UploadedAt.After(out[j].UploadedAt)
		}

		return out[i].ID > out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (f *fakeImages) ListByIDs(_ context.Context, owner string, ids []string) ([]model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Image
	for _, id := range ids {
		if img, ok := f.records[id]; ok && img.Owner == owner {
			out = append(out, img)
		}
	}

	return out, nil
}

func (f *fakeImages) ListByVectorIDs(_ context.Context, owner string, vectorIDs []string) ([]model.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	wanted := make(map[string]struct{}, len(vectorIDs))
	for _, v := range vectorIDs {
		wanted[v] = struct{}{}
	}

	var out []model.Image
	for _, img := range f.records {
		if img.Owner != owner {
			continue
		}
		if _, ok := wanted[img.VectorID]; ok {
			out = append(out, img)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (f *fakeImages) Remove(_ context.Context, owner, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	img, ok := f.records[id]
	if !ok || img.Owner != owner {
		return errs.ErrNotFound
	}
	delete(f.records, id)

	return nil
}

type fakeAlbums struct {
	mu      sync.Mutex
	private map[string]model.Album
	public  map[string]model.PublicAlbum
}

func newFakeAlbums() *fakeAlbums {
	return &fakeAlbums{
		private: make(map[string]model.Album),
		public:  make(map[string]model.PublicAlbum),
	}
}

func (f *fakeAlbums) Create(_ context.Context, album *model.Album, mirror *model.PublicAlbum) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.private[album.ID] = *album
	if mirror != nil {
		f.public[mirror.ID] = *mirror
	}

	return nil
}

func setInsert(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}

	return append(ids, id)
}

func setRemove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}

	return out
}

func (f *fakeAlbums) AddImage(_ context.Context, owner, albumID, imageID string, public bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.private[albumID]
	if !ok || album.Owner != owner {
		return errs.ErrNotFound
	}
	album.ImageIDs = setInsert(album.ImageIDs, imageID)
	f.private[albumID] = album

	if public {
		mirror := f.public[albumID]
		mirror.ImageIDs = setInsert(mirror.ImageIDs, imageID)
		f.public[albumID] = mirror
	}

	return nil
}

func (f *fakeAlbums) RemoveImage(_ context.Context, owner, albumID, imageID string, public bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.private[albumID]
	if !ok || album.Owner != owner {
		return errs.ErrNotFound
	}
	album.ImageIDs = setRemove(album.ImageIDs, imageID)
	f.private[albumID] = album

	if public {
		mirror := f.public[albumID]
		mirror.ImageIDs = setRemove(mirror.ImageIDs, imageID)
		f.public[albumID] = mirror
	}

	return nil
}

func (f *fakeAlbums) Delete(_ context.Context, owner, albumID string, public bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.private[albumID]
	if !ok || album.Owner != owner {
		return errs.ErrNotFound
	}
	delete(f.private, albumID)
	if public {
		delete(f.public, albumID)
	}

	return nil
}

func (f *fakeAlbums) ScrubImage(_ context.Context, owner, imageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, album := range f.private {
		if album.Owner != owner {
			continue
		}
		album.ImageIDs = setRemove(album.ImageIDs, imageID)
		f.private[id] = album
	}
	for id, mirror := range f.public {
		if mirror.OwnerID != owner {
			continue
		}
		mirror.ImageIDs = setRemove(mirror.ImageIDs, imageID)
		f.public[id] = mirror
	}

	return nil
}

func (f *fakeAlbums) GetByID(_ context.Context, owner, albumID string) (*model.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.private[albumID]
	if !ok || album.Owner != owner {
		return nil, errs.ErrNotFound
	}

	return &album, nil
}

func (f *fakeAlbums) GetPublic(_ context.Context, albumID string) (*model.PublicAlbum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	mirror, ok := f.public[albumID]
	if !ok {
		return nil, errs.ErrNotFound
	}

	return &mirror, nil
}

func (f *fakeAlbums) ListByOwner(_ context.Context, owner string) ([]model.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Album
	for _, album := range f.private {
		if album.Owner == owner {
			out = append(out, album)
		}
	}

	return out, nil
}

func (f *fakeAlbums) ListPublicByOwner(_ context.Context, owner string) ([]model.PublicAlbum, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.PublicAlbum
	for _, mirror := range f.public {
		if mirror.OwnerID == owner {
			out = append(out, mirror)
		}
	}

	return out, nil
}

type fakeRecognizer struct {
	mu          sync.Mutex
	failEmbed   bool
	failDetect  bool
	failLabels  bool
	labels      []string
	vectorID    string
	textMatches []dto.VectorMatch
	detected    []string
	named       map[string]string
	faces       []dto.Face
	persons     map[string][]dto.PersonImage
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{
		vectorID: "vec-default",
		named:    make(map[string]string),
		persons:  make(map[string][]dto.PersonImage),
	}
}

func (f *fakeRecognizer) DetectFaces(_ context.Context, _, filename string, _ io.Reader) error {
	if f.failDetect {
		return errs.ErrRecognitionService
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.detected = append(f.detected, filename)

	return nil
}

func (f *fakeRecognizer) EmbedImage(_ context.Context, _, _ string, _ io.Reader) (string, error) {
	if f.failEmbed {
		return "", errs.ErrRecognitionService
	}

	return f.vectorID, nil
}

func (f *fakeRecognizer) DetectLabels(_ context.Context, _, _ string, _ io.Reader) ([]string, error) {
	if f.failLabels {
		return nil, errs.ErrRecognitionService
	}

	return f.labels, nil
}

func (f *fakeRecognizer) EmbedText(_ context.Context, _, _ string) (dto.TextEmbedResponse, error) {
	return dto.TextEmbedResponse{Matches: f.textMatches}, nil
}

func (f *fakeRecognizer) NameFace(_ context.Context, _, faceID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.named[faceID] = name

	return nil
}

func (f *fakeRecognizer) PersonImages(_ context.Context, _, name string) ([]dto.PersonImage, error) {
	return f.persons[name], nil
}

func (f *fakeRecognizer) FaceCrop(_ context.Context, _, faceID string) ([]byte, string, error) {
	return []byte("crop-" + faceID), "image/jpeg", nil
}

func (f *fakeRecognizer) UserFaces(_ context.Context, _ string) ([]dto.Face, error) {
	return f.faces, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (f *fakePublisher) Publish(_ context.Context, topic string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)

	return nil
}

func (f *fakePublisher) published(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, t := range f.topics {
		if t == topic {
			n++
		}
	}

	return n
}

type fakeSubscriber struct {
	signals chan struct{}
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{signals: make(chan struct{}, 8)}
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, _ string) (<-chan struct{}, error) {
	out := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case s, ok := <-f.signals:
				if !ok {
					return
				}
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
