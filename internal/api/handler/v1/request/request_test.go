package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateItemRequest
		wantErr bool
	}{
		{name: "valid without image", req: CreateItemRequest{Name: "Grill", Price: 100}},
		{name: "valid external url", req: CreateItemRequest{Name: "Grill", Price: 100, ImageRef: "https://example.com/grill.jpg"}},
		{name: "valid data url", req: CreateItemRequest{Name: "Grill", Price: 100, ImageRef: "data:image/png;base64,iVBORw0KGgo="}},
		{name: "missing name", req: CreateItemRequest{Price: 100}, wantErr: true},
		{name: "zero price", req: CreateItemRequest{Name: "Grill"}, wantErr: true},
		{name: "negative price", req: CreateItemRequest{Name: "Grill", Price: -1}, wantErr: true},
		{name: "image ref with whitespace", req: CreateItemRequest{Name: "Grill", Price: 100, ImageRef: "https://example.com/a b.jpg"}, wantErr: true},
		{name: "image ref with bad scheme", req: CreateItemRequest{Name: "Grill", Price: 100, ImageRef: "ftp://example.com/grill.jpg"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateSponsorshipRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateSponsorshipRequest
		wantErr bool
	}{
		{name: "valid", req: CreateSponsorshipRequest{ItemID: 1, SponsorName: "Dana", Amount: 25}},
		{name: "missing item", req: CreateSponsorshipRequest{SponsorName: "Dana", Amount: 25}, wantErr: true},
		{name: "missing sponsor name", req: CreateSponsorshipRequest{ItemID: 1, Amount: 25}, wantErr: true},
		{name: "zero amount", req: CreateSponsorshipRequest{ItemID: 1, SponsorName: "Dana"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequests_Validate(t *testing.T) {
	assert.NoError(t, (&PasscodeLoginRequest{Passcode: "alicecode"}).Validate())
	assert.Error(t, (&PasscodeLoginRequest{}).Validate())

	assert.NoError(t, (&AdminLoginRequest{Username: "alice", Password: "alicepass"}).Validate())
	assert.Error(t, (&AdminLoginRequest{Username: "alice"}).Validate())
	assert.Error(t, (&AdminLoginRequest{Password: "alicepass"}).Validate())
}
