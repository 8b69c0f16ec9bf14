package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/danishfaisall/gokart/internal/identity/entity"
	"github.com/danishfaisall/gokart/internal/pkg/goerror"
	"github.com/danishfaisall/gokart/internal/pkg/storage"
)

func TestProfile(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		d := newTestDeps()
		d.db.getUserByID = func(_ context.Context, id int64) (*entity.User, error) {
			if id != 7 {
				t.Fatalf("lookup id = %d, want 7", id)
			}
			return verifiedUser(), nil
		}
		uc := newTestUsecase(t, d)

		user, err := uc.Profile(authedContext(7, "jane@example.com"), ProfileInput{})
		if err != nil {
			t.Fatalf("Profile() error = %v", err)
		}
		if user.Email != "jane@example.com" {
			t.Fatalf("user = %+v", user)
		}
	})

	t.Run("deleted account reads as unauthenticated", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		_, err := uc.Profile(authedContext(7, "jane@example.com"), ProfileInput{})

		assertBusinessError(t, err, "Authentication required", goerror.CodeUnauthorized)
	})
}

func TestProfileUpdate(t *testing.T) {
	t.Run("success updates the name", func(t *testing.T) {
		d := newTestDeps()

		var updatedName string
		d.db.updateProfile = func(_ context.Context, id int64, fullName string) error {
			if id != 7 {
				t.Fatalf("update id = %d, want 7", id)
			}
			updatedName = fullName
			return nil
		}
		uc := newTestUsecase(t, d)

		err := uc.ProfileUpdate(authedContext(7, "jane@example.com"), ProfileUpdateInput{
			FullName: " Jane Doe ",
		})
		if err != nil {
			t.Fatalf("ProfileUpdate() error = %v", err)
		}

		if updatedName != "Jane Doe" {
			t.Fatalf("updated name = %q, want trimmed", updatedName)
		}
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		assertInvalidInput(t, uc.ProfileUpdate(authedContext(7, "jane@example.com"), ProfileUpdateInput{
			FullName: "Jane 1234",
		}))
	})
}

func TestProfileUpdateAvatar(t *testing.T) {
	t.Run("uploads under the user prefix and stores the url", func(t *testing.T) {
		d := newTestDeps()

		var putKey, putBucket string
		d.storage.putObject = func(_ context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
			putBucket = bucket
			putKey = key
			if opts.ContentType != "image/png" {
				t.Fatalf("content type = %q", opts.ContentType)
			}
			if _, err := io.Copy(io.Discard, r); err != nil {
				t.Fatalf("drain upload: %v", err)
			}
			return storage.ObjectInfo{Bucket: bucket, Key: key}, nil
		}

		var storedURL string
		d.db.updateAvatar = func(_ context.Context, id int64, avatarURL string) error {
			if id != 7 {
				t.Fatalf("update id = %d, want 7", id)
			}
			storedURL = avatarURL
			return nil
		}

		uc := newTestUsecase(t, d)

		err := uc.ProfileUpdateAvatar(authedContext(7, "jane@example.com"), ProfileUpdateAvatarInput{
			File:        strings.NewReader("png-bytes"),
			ContentType: "image/png",
		})
		if err != nil {
			t.Fatalf("ProfileUpdateAvatar() error = %v", err)
		}

		if putBucket != "avatars" {
			t.Fatalf("bucket = %q", putBucket)
		}
		if putKey != "7/uuid-1.png" {
			t.Fatalf("object key = %q", putKey)
		}
		if storedURL != "https://cdn.example.com/avatars/7/uuid-1.png" {
			t.Fatalf("stored url = %q", storedURL)
		}
	})

	t.Run("unsupported content type rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		err := uc.ProfileUpdateAvatar(authedContext(7, "jane@example.com"), ProfileUpdateAvatarInput{
			File:        strings.NewReader("gif-bytes"),
			ContentType: "image/gif",
		})

		assertInvalidInput(t, err)
	})

	t.Run("oversized upload rejected", func(t *testing.T) {
		d := newTestDeps()
		d.cfg.int64s["modules.identity.avatar_max_size_bytes"] = 4
		d.storage.putObject = func(_ context.Context, _, _ string, r io.Reader, _ storage.PutOptions) (storage.ObjectInfo, error) {
			if _, err := io.Copy(io.Discard, r); err != nil {
				return storage.ObjectInfo{}, err
			}
			return storage.ObjectInfo{}, nil
		}
		d.db.updateAvatar = func(context.Context, int64, string) error {
			t.Fatal("avatar stored despite oversized upload")
			return nil
		}
		uc := newTestUsecase(t, d)

		err := uc.ProfileUpdateAvatar(authedContext(7, "jane@example.com"), ProfileUpdateAvatarInput{
			File:        strings.NewReader("way too many bytes"),
			ContentType: "image/png",
		})

		assertInvalidInput(t, err)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		uc := newTestUsecase(t, newTestDeps())

		assertInvalidInput(t, uc.ProfileUpdateAvatar(authedContext(7, "jane@example.com"), ProfileUpdateAvatarInput{
			ContentType: "image/png",
		}))
	})
}
