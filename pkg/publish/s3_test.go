package publish

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/logging"
)

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestPublisher_PublishPNG(t *testing.T) {
	client := &fakeS3{}
	publisher := NewPublisher(client, "renders", "diorama", logging.NewTestLogger())

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(1, 0, color.RGBA{R: 68, G: 142, B: 228, A: 255})

	key, err := publisher.PublishPNG(context.Background(), "render_1.png", img)
	if err != nil {
		t.Fatalf("PublishPNG failed: %v", err)
	}
	if key != "diorama/render_1.png" {
		t.Errorf("Expected key diorama/render_1.png, got %s", key)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("Expected 1 upload, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" {
		t.Errorf("Expected bucket renders, got %s", aws.StringValue(input.Bucket))
	}
	if aws.StringValue(input.ContentType) != "image/png" {
		t.Errorf("Expected image/png, got %s", aws.StringValue(input.ContentType))
	}
	if aws.Int64Value(input.ContentLength) != int64(len(client.bodies[0])) {
		t.Errorf("Expected content length %d, got %d", len(client.bodies[0]), aws.Int64Value(input.ContentLength))
	}

	decoded, err := png.Decode(bytes.NewReader(client.bodies[0]))
	if err != nil {
		t.Fatalf("Uploaded body is not a PNG: %v", err)
	}
	r, g, b, _ := decoded.At(1, 0).RGBA()
	if r>>8 != 68 || g>>8 != 142 || b>>8 != 228 {
		t.Errorf("Expected uploaded pixel (68,142,228), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPublisher_UploadError(t *testing.T) {
	errDenied := errors.New("access denied")
	publisher := NewPublisher(&fakeS3{err: errDenied}, "renders", "", nil)

	_, err := publisher.PublishPNG(context.Background(), "render.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, errDenied) {
		t.Errorf("Expected wrapped upload error, got %v", err)
	}
}

func TestPublisher_KeyWithoutPrefix(t *testing.T) {
	publisher := NewPublisher(&fakeS3{}, "renders", "", nil)
	if key := publisher.Key("a.png"); key != "a.png" {
		t.Errorf("Expected a.png, got %s", key)
	}
}

func TestNewS3Client(t *testing.T) {
	client, err := NewS3Client(config.S3Config{
		Bucket:    "renders",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
	})
	if err != nil {
		t.Fatalf("NewS3Client failed: %v", err)
	}
	if client == nil {
		t.Fatal("Expected a client")
	}
}
