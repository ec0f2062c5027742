package handler_test

import (
	"context"
	"io"

	"photovault/internal/domain/dto"
)

// Handler tests exercise the HTTP surface against canned workflow doubles;
// the workflows themselves are tested in their own package.

type fakeIngestor struct {
	result   dto.IngestResult
	err      error
	filename string
}

func (f *fakeIngestor) Ingest(_ context.Context, _, filename string, _ io.Reader) (dto.IngestResult, error) {
	f.filename = filename

	return f.result, f.err
}

type fakeFeeder struct {
	page   dto.FeedPage
	err    error
	cursor string
}

func (f *fakeFeeder) List(_ context.Context, _, cursor string) (dto.FeedPage, error) {
	f.cursor = cursor

	return f.page, f.err
}

func (f *fakeFeeder) Watch(_ context.Context, _ string) (<-chan dto.FeedPage, error) {
	if f.err != nil {
		return nil, f.err
	}

	ch := make(chan dto.FeedPage, 1)
	ch <- f.page
	close(ch)

	return ch, nil
}

type albumCall struct {
	op      string
	owner   string
	albumID string
	imageID string
	public  bool
}

type fakeAlbumManager struct {
	err     error
	calls   []albumCall
	detail  dto.AlbumDetail
	auto    dto.AutoCreateResult
	created string
}

func (f *fakeAlbumManager) Create(_ context.Context, owner, name string, _ []string, public bool) (string, error) {
	f.calls = append(f.calls, albumCall{op: "create", owner: owner, albumID: name, public: public})

	return f.created, f.err
}

func (f *fakeAlbumManager) AddImage(_ context.Context, owner, albumID, imageID string, public bool) error {
	f.calls = append(f.calls, albumCall{op: "add", owner: owner, albumID: albumID, imageID: imageID, public: public})

	return f.err
}

func (f *fakeAlbumManager) RemoveImage(_ context.Context, owner, albumID, imageID string, public bool) error {
	f.calls = append(f.calls, albumCall{op: "remove", owner: owner, albumID: albumID, imageID: imageID, public: public})

	return f.err
}

func (f *fakeAlbumManager) Delete(_ context.Context, owner, albumID string, public bool) error {
	f.calls = append(f.calls, albumCall{op: "delete", owner: owner, albumID: albumID, public: public})

	return f.err
}

func (f *fakeAlbumManager) DeleteImageCascade(_ context.Context, owner, imageID string) error {
	f.calls = append(f.calls, albumCall{op: "cascade", owner: owner, imageID: imageID})

	return f.err
}

func (f *fakeAlbumManager) List(_ context.Context, _, _ string) ([]dto.AlbumSummary, error) {
	return nil, f.err
}

func (f *fakeAlbumManager) Get(_ context.Context, _, _ string, _ bool) (dto.AlbumDetail, error) {
	return f.detail, f.err
}

func (f *fakeAlbumManager) AutoCreate(_ context.Context, owner, name string, public bool) (dto.AutoCreateResult, error) {
	f.calls = append(f.calls, albumCall{op: "auto", owner: owner, albumID: name, public: public})

	return f.auto, f.err
}

type fakeSharer struct {
	shared dto.SharedAlbum
	err    error
}

func (f *fakeSharer) Get(_ context.Context, _ string) (dto.SharedAlbum, error) {
	return f.shared, f.err
}
