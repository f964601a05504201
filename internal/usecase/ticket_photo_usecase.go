package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/internal/infrastructure/photos"
	"truvamate/pkg/errors"
	"truvamate/pkg/logger"
)

// Proof-of-purchase uploads are named LTO-<4digits>-<digits>, optionally
// suffixed -T<n> when one order spans several tickets.
var ticketFilenamePattern = regexp.MustCompile(`(LTO-\d{4}-\d+)(?:-T(\d+))?`)

const (
	thumbWidth  = 400
	thumbHeight = 400
	fullWidth   = 1600
	fullHeight  = 1600
)

type PhotoLibraryClient interface {
	SearchAlbum(ctx context.Context, accessToken, albumID string) ([]photos.MediaItem, error)
	ListRecent(ctx context.Context, accessToken string) ([]photos.MediaItem, error)
	ListAlbums(ctx context.Context, accessToken string) ([]photos.Album, error)
}

type TicketPhotoUseCase struct {
	connRepo repository.PhotoConnectionRepository
	client   PhotoLibraryClient
	notifier Notifier
}

func NewTicketPhotoUseCase(
	connRepo repository.PhotoConnectionRepository,
	client PhotoLibraryClient,
	notifier Notifier,
) *TicketPhotoUseCase {
	return &TicketPhotoUseCase{
		connRepo: connRepo,
		client:   client,
		notifier: notifier,
	}
}

type PhotoLookupResult struct {
	OrderNumber string               `json:"order_number"`
	Photos      []entity.TicketPhoto `json:"photos"`
	Message     string               `json:"message,omitempty"`
}

type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	AlbumID   string `json:"album_id,omitempty"`
}

// Connect persists the caller-supplied album id and access credential.
func (u *TicketPhotoUseCase) Connect(ctx context.Context, userID, albumID, accessToken string) error {
	if accessToken == "" {
		return errors.BadRequest("Access token is required", nil)
	}

	conn := &entity.PhotoConnection{
		UserID:      userID,
		AlbumID:     albumID,
		AccessToken: accessToken,
		UpdatedAt:   time.Now(),
	}
	if err := u.connRepo.Save(ctx, conn); err != nil {
		return err
	}

	u.notifier.Push(userID, "Photo library connected", entity.ToastSuccess)
	return nil
}

func (u *TicketPhotoUseCase) Connection(ctx context.Context, userID string) (*ConnectionStatus, error) {
	conn, err := u.connRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil || conn.AccessToken == "" {
		return &ConnectionStatus{Connected: false}, nil
	}
	return &ConnectionStatus{Connected: true, AlbumID: conn.AlbumID}, nil
}

// Albums lists the connected library's albums for the setup screen.
func (u *TicketPhotoUseCase) Albums(ctx context.Context, userID string) ([]photos.Album, error) {
	conn, err := u.requireConnection(ctx, userID)
	if err != nil {
		return nil, err
	}

	albums, err := u.client.ListAlbums(ctx, conn.AccessToken)
	if err != nil {
		return nil, libraryError(err)
	}
	return albums, nil
}

// Lookup finds ticket images whose filename contains the order number. No
// match is a normal empty result with explanatory copy; upstream failures
// surface as one error.
func (u *TicketPhotoUseCase) Lookup(ctx context.Context, userID, orderNumber string) (*PhotoLookupResult, error) {
	if orderNumber == "" {
		return nil, errors.BadRequest("Order number is required", nil)
	}

	conn, err := u.requireConnection(ctx, userID)
	if err != nil {
		return nil, err
	}

	var items []photos.MediaItem
	if conn.AlbumID != "" {
		items, err = u.client.SearchAlbum(ctx, conn.AccessToken, conn.AlbumID)
	} else {
		items, err = u.client.ListRecent(ctx, conn.AccessToken)
	}
	if err != nil {
		logger.Error("Photo library lookup failed for %s: %v", orderNumber, err)
		return nil, libraryError(err)
	}

	result := &PhotoLookupResult{OrderNumber: orderNumber, Photos: []entity.TicketPhoto{}}
	for _, item := range items {
		if !strings.Contains(item.Filename, orderNumber) {
			continue
		}
		orderToken, ticketToken, ok := ParseTicketFilename(item.Filename)
		if !ok {
			continue
		}
		result.Photos = append(result.Photos, entity.TicketPhoto{
			MediaID:      item.ID,
			Filename:     item.Filename,
			OrderNumber:  orderToken,
			TicketNumber: ticketToken,
			ThumbnailURL: photos.SizedURL(item.BaseURL, thumbWidth, thumbHeight),
			FullURL:      photos.SizedURL(item.BaseURL, fullWidth, fullHeight),
			CreationTime: item.CreationTime,
		})
	}

	if len(result.Photos) == 0 {
		result.Message = "Your ticket photos have not been uploaded yet. Please check back soon."
	}
	return result, nil
}

// ParseTicketFilename extracts the order-number and ticket-number tokens.
// Filenames without a -T suffix are a single-ticket order, reported as T1.
func ParseTicketFilename(filename string) (orderNumber, ticketNumber string, ok bool) {
	m := ticketFilenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", "", false
	}
	ticketNumber = "T1"
	if m[2] != "" {
		ticketNumber = "T" + m[2]
	}
	return m[1], ticketNumber, true
}

func (u *TicketPhotoUseCase) requireConnection(ctx context.Context, userID string) (*entity.PhotoConnection, error) {
	conn, err := u.connRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil || conn.AccessToken == "" {
		return nil, errors.New("PHOTOS_NOT_CONNECTED", "Photo library is not connected", http.StatusBadRequest, nil)
	}
	return conn, nil
}

func libraryError(err error) error {
	return errors.New("PHOTO_LIBRARY_ERROR", "Could not reach the photo library", http.StatusBadGateway, err)
}
