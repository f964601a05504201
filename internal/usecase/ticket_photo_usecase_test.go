package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/internal/infrastructure/photos"
	apperrors "truvamate/pkg/errors"
)

type fakePhotoClient struct {
	items      []photos.MediaItem
	albums     []photos.Album
	err        error
	searched   int
	listedRecv int
}

func (c *fakePhotoClient) SearchAlbum(ctx context.Context, accessToken, albumID string) ([]photos.MediaItem, error) {
	c.searched++
	return c.items, c.err
}

func (c *fakePhotoClient) ListRecent(ctx context.Context, accessToken string) ([]photos.MediaItem, error) {
	c.listedRecv++
	return c.items, c.err
}

func (c *fakePhotoClient) ListAlbums(ctx context.Context, accessToken string) ([]photos.Album, error) {
	return c.albums, c.err
}

func newPhotoFixture(client *fakePhotoClient) (*TicketPhotoUseCase, *fakePhotoConnRepo) {
	connRepo := newFakePhotoConnRepo()
	uc := NewTicketPhotoUseCase(connRepo, client, &fakeNotifier{})
	return uc, connRepo
}

func TestParseTicketFilename(t *testing.T) {
	cases := []struct {
		filename string
		order    string
		ticket   string
		ok       bool
	}{
		{"LTO-0042-1735689600.jpg", "LTO-0042-1735689600", "T1", true},
		{"LTO-0042-1735689600-T3.jpg", "LTO-0042-1735689600", "T3", true},
		{"LTO-0042-1735689600-T12.png", "LTO-0042-1735689600", "T12", true},
		{"IMG_1234.jpg", "", "", false},
		{"TRV-1735689600-0042.jpg", "", "", false},
	}
	for _, tc := range cases {
		order, ticket, ok := ParseTicketFilename(tc.filename)
		assert.Equal(t, tc.ok, ok, tc.filename)
		assert.Equal(t, tc.order, order, tc.filename)
		assert.Equal(t, tc.ticket, ticket, tc.filename)
	}
}

func TestConnectRequiresToken(t *testing.T) {
	uc, _ := newPhotoFixture(&fakePhotoClient{})

	err := uc.Connect(context.Background(), "u1", "album-1", "")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestConnectionStatus(t *testing.T) {
	uc, _ := newPhotoFixture(&fakePhotoClient{})
	ctx := context.Background()

	status, err := uc.Connection(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, status.Connected)

	require.NoError(t, uc.Connect(ctx, "u1", "album-1", "token-abc"))

	status, err = uc.Connection(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "album-1", status.AlbumID)
}

func TestLookupWithoutConnection(t *testing.T) {
	uc, _ := newPhotoFixture(&fakePhotoClient{})

	_, err := uc.Lookup(context.Background(), "u1", "LTO-0042-1735689600")
	assert.True(t, apperrors.Is(err, "PHOTOS_NOT_CONNECTED"))
}

func TestLookupFiltersByOrderNumber(t *testing.T) {
	client := &fakePhotoClient{items: []photos.MediaItem{
		{ID: "m1", Filename: "LTO-0042-1735689600-T1.jpg", BaseURL: "https://ph.example/m1"},
		{ID: "m2", Filename: "LTO-0042-1735689600-T2.jpg", BaseURL: "https://ph.example/m2"},
		{ID: "m3", Filename: "LTO-0099-1735689700-T1.jpg", BaseURL: "https://ph.example/m3"},
		{ID: "m4", Filename: "holiday.jpg", BaseURL: "https://ph.example/m4"},
	}}
	uc, _ := newPhotoFixture(client)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, "u1", "album-1", "token-abc"))

	result, err := uc.Lookup(ctx, "u1", "LTO-0042-1735689600")
	require.NoError(t, err)

	require.Len(t, result.Photos, 2)
	assert.Empty(t, result.Message)
	assert.Equal(t, "T1", result.Photos[0].TicketNumber)
	assert.Equal(t, "T2", result.Photos[1].TicketNumber)
	assert.Equal(t, "https://ph.example/m1=w400-h400", result.Photos[0].ThumbnailURL)
	assert.Equal(t, "https://ph.example/m1=w1600-h1600", result.Photos[0].FullURL)
	assert.Equal(t, 1, client.searched)
	assert.Equal(t, 0, client.listedRecv)
}

func TestLookupFallsBackToRecentWithoutAlbum(t *testing.T) {
	client := &fakePhotoClient{}
	uc, _ := newPhotoFixture(client)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, "u1", "", "token-abc"))

	result, err := uc.Lookup(ctx, "u1", "LTO-0042-1735689600")
	require.NoError(t, err)

	assert.Equal(t, 0, client.searched)
	assert.Equal(t, 1, client.listedRecv)
	assert.Empty(t, result.Photos)
	assert.Equal(t, "Your ticket photos have not been uploaded yet. Please check back soon.", result.Message)
}

func TestLookupUpstreamFailure(t *testing.T) {
	client := &fakePhotoClient{err: errors.New("503 from library")}
	uc, _ := newPhotoFixture(client)
	ctx := context.Background()

	require.NoError(t, uc.Connect(ctx, "u1", "album-1", "token-abc"))

	_, err := uc.Lookup(ctx, "u1", "LTO-0042-1735689600")
	assert.True(t, apperrors.Is(err, "PHOTO_LIBRARY_ERROR"))
}

func TestLookupRequiresOrderNumber(t *testing.T) {
	uc, _ := newPhotoFixture(&fakePhotoClient{})

	_, err := uc.Lookup(context.Background(), "u1", "")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}
