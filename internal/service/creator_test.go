package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrlinx/internal/backend"
	"qrlinx/internal/mocks"
	"qrlinx/internal/model"
)

func shortened() *model.ShortenResponse {
	return &model.ShortenResponse{
		ShortURL:    "http://127.0.0.1:8000/ab12cd",
		ShortHash:   "ab12cd",
		OriginalURL: "https://example.com/long",
	}
}

func TestNewCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "")
	_, err := uuid.Parse(c.origin)
	assert.NoError(t, err)
	assert.NotEqual(t, c.origin, NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "").origin)

	c = NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "instance-a")
	assert.Equal(t, "instance-a", c.origin)
}

func TestCreator_Create(t *testing.T) {
	t.Run("empty url makes no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "a")

		result, err := c.Create(context.Background(), "user-1", "   ")
		assert.ErrorIs(t, err, ErrEmptyURL)
		assert.Nil(t, result)
	})

	t.Run("link and qr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		publisher := mocks.NewMockEventPublisher(ctrl)
		gomock.InOrder(
			client.EXPECT().Shorten(gomock.Any(), "https://example.com/long", "user-1").Return(shortened(), nil),
			publisher.EXPECT().PublishLinkEvent(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, event *model.LinkEvent) error {
					assert.Equal(t, model.LinkCreated, event.Type)
					assert.Equal(t, "user-1", event.OwnerID)
					assert.Equal(t, "ab12cd", event.ShortHash)
					assert.Equal(t, "a", event.Origin)
					_, err := uuid.Parse(event.ID)
					assert.NoError(t, err)
					return nil
				}),
			client.EXPECT().CreateQRCode(gomock.Any(), "http://127.0.0.1:8000/ab12cd").
				Return(&model.QRCodeResponse{QRCodeBase64: "iVBORw0KGgo="}, nil),
		)

		c := NewCreator(client, publisher, "a")

		result, err := c.Create(context.Background(), "user-1", "  https://example.com/long ")
		require.NoError(t, err)
		assert.True(t, result.HasQR())
		assert.Equal(t, "ab12cd", result.Link.ShortHash)
		assert.Equal(t, "user-1", result.Link.OwnerID)
		assert.Equal(t, "https://example.com/long", result.Link.OriginalURL)
		assert.Equal(t, model.QRReady, result.QRStatus)
	})

	t.Run("shorten rejected makes no qr call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		client.EXPECT().Shorten(gomock.Any(), "htp:/bad", "user-1").
			Return(nil, &backend.APIError{Endpoint: "/shorten_url", Status: 400, Detail: "invalid url"})

		c := NewCreator(client, mocks.NewMockEventPublisher(ctrl), "a")

		result, err := c.Create(context.Background(), "user-1", "htp:/bad")
		assert.Nil(t, result)

		var cerr *CreationError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, StageShorten, cerr.Stage)
		assert.Equal(t, "invalid url", cerr.Detail)
		assert.False(t, cerr.IsPartial())
	})

	t.Run("transport failure is generic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		client.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		c := NewCreator(client, nil, "a")

		_, err := c.Create(context.Background(), "user-1", "https://example.com")
		var cerr *CreationError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, unavailableDetail, cerr.Detail)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("qr failure keeps the link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		client.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).Return(shortened(), nil).Times(1)
		client.EXPECT().CreateQRCode(gomock.Any(), gomock.Any()).
			Return(nil, &backend.APIError{Endpoint: "/create_qrcode", Status: 500, Detail: "qr engine down"})

		c := NewCreator(client, nil, "a")

		result, err := c.Create(context.Background(), "user-1", "https://example.com/long")
		require.NotNil(t, result)
		assert.Equal(t, "ab12cd", result.Link.ShortHash)
		assert.False(t, result.HasQR())
		assert.Equal(t, model.QRUnavailable, result.QRStatus)
		assert.Equal(t, "qr engine down", result.QRDetail)

		var cerr *CreationError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, StageQR, cerr.Stage)
		assert.True(t, cerr.IsPartial())
	})

	t.Run("publish failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		publisher := mocks.NewMockEventPublisher(ctrl)
		client.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).Return(shortened(), nil)
		publisher.EXPECT().PublishLinkEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		client.EXPECT().CreateQRCode(gomock.Any(), gomock.Any()).Return(&model.QRCodeResponse{QRCodeBase64: "x"}, nil)

		c := NewCreator(client, publisher, "a")

		result, err := c.Create(context.Background(), "user-1", "https://example.com/long")
		assert.NoError(t, err)
		assert.True(t, result.HasQR())
	})
}

func TestCreator_RetryQR(t *testing.T) {
	partial := func() *model.CreationResult {
		return &model.CreationResult{
			Link:     model.Link{ShortHash: "ab12cd", OwnerID: "user-1"},
			ShortURL: "http://127.0.0.1:8000/ab12cd",
			QRStatus: model.QRUnavailable,
			QRDetail: "qr engine down",
		}
	}

	t.Run("only the qr step runs again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		client.EXPECT().Shorten(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		client.EXPECT().CreateQRCode(gomock.Any(), "http://127.0.0.1:8000/ab12cd").
			Return(&model.QRCodeResponse{QRCodeBase64: "iVBORw0KGgo="}, nil)

		c := NewCreator(client, nil, "a")
		in := partial()

		result, err := c.RetryQR(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, result.HasQR())
		assert.Empty(t, result.QRDetail)
		// input is left alone
		assert.Equal(t, model.QRUnavailable, in.QRStatus)
	})

	t.Run("retry fails again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockShortenerClient(ctrl)
		client.EXPECT().CreateQRCode(gomock.Any(), gomock.Any()).
			Return(nil, &backend.APIError{Status: 500, Detail: "still down"})

		c := NewCreator(client, nil, "a")

		result, err := c.RetryQR(context.Background(), partial())
		require.NotNil(t, result)
		assert.Equal(t, "still down", result.QRDetail)
		assert.Equal(t, "ab12cd", result.Link.ShortHash)

		var cerr *CreationError
		assert.True(t, errors.As(err, &cerr))
	})

	t.Run("already has qr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "a")
		done := partial()
		done.QRStatus = model.QRReady
		done.QRCodeBase64 = "x"

		result, err := c.RetryQR(context.Background(), done)
		assert.NoError(t, err)
		assert.True(t, result.HasQR())
	})

	t.Run("nothing to retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := NewCreator(mocks.NewMockShortenerClient(ctrl), nil, "a")

		result, err := c.RetryQR(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoResult)
		assert.Nil(t, result)
	})
}
