package files

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

// TestCaseStorage fetches hidden test-case bundles from object storage for
// tasks that reference a key instead of carrying cases inline.
type TestCaseStorage struct {
	cl     *minio.Client
	Bucket string
}

type Config struct {
	Url      string
	Login    string
	Password string
	Bucket   string
}

func NewTestCaseStorage(cfg Config) (*TestCaseStorage, error) {
	client, err := minio.New(cfg.Url, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.Login, cfg.Password, ""),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to object storage")
	}
	return &TestCaseStorage{cl: client, Bucket: cfg.Bucket}, nil
}

func (s *TestCaseStorage) GetTestCases(ctx context.Context, key string) ([]models.TestCase, error) {
	obj, err := s.cl.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(err, "fetch test case bundle %q", key)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "read test case bundle %q", key)
	}
	return DecodeBundle(data)
}
