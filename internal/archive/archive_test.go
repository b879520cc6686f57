package archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Put(t *testing.T) {
	fp := &fakePutter{}
	a := newS3(fp, "scans-bucket")
	a.now = func() time.Time { return time.Date(2025, 1, 3, 23, 0, 0, 0, time.UTC) }
	id := uuid.Must(uuid.FromString("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}

	key, err := a.Put(context.Background(), id, jpeg)
	require.NoError(t, err)
	require.Equal(t, "scans/2025/01/03/6ba7b810-9dad-11d1-80b4-00c04fd430c8.jpg", key)
	require.Equal(t, "scans-bucket", aws.ToString(fp.in.Bucket))
	require.Equal(t, key, aws.ToString(fp.in.Key))
	require.Equal(t, "image/jpeg", aws.ToString(fp.in.ContentType))
	require.Equal(t, jpeg, fp.body)
}

func TestS3_PutError(t *testing.T) {
	a := newS3(&fakePutter{err: errors.New("denied")}, "b")
	key, err := a.Put(context.Background(), uuid.Must(uuid.NewV4()), []byte("x"))
	require.Error(t, err)
	require.Empty(t, key)
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{Region: "eu-central-1"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	key, err := Nop{}.Put(context.Background(), uuid.Nil, nil)
	require.NoError(t, err)
	require.Empty(t, key)
}
