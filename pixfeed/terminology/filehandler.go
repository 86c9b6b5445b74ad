package terminology

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FileHandler opens terminology resources such as crosswalk files.
type FileHandler interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// HandlerFor picks the handler able to open uri.
func HandlerFor(uri string, logger logrus.FieldLogger, endpoint, assumeRoleArn string) FileHandler {
	if strings.HasPrefix(uri, "s3://") {
		return &S3FileHandler{Logger: logger, Endpoint: endpoint, AssumeRoleArn: assumeRoleArn}
	}
	return &LocalFileHandler{Logger: logger}
}

// LocalFileHandler reads files from the local filesystem.
// This handler should only be used for local dev/testing.
type LocalFileHandler struct {
	Logger logrus.FieldLogger
}

func (handler *LocalFileHandler) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Clean(strings.TrimPrefix(uri, "file://")))
	if err != nil {
		err = errors.Wrapf(err, "could not read file %s", uri)
		handler.Logger.Error(err)
		return nil, err
	}
	return f, nil
}

// S3FileHandler reads objects addressed as s3://bucket/key.
type S3FileHandler struct {
	Logger        logrus.FieldLogger
	Endpoint      string
	AssumeRoleArn string
	// Client overrides the session built from Endpoint and AssumeRoleArn.
	Client s3iface.S3API
}

func (handler *S3FileHandler) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	bucket, key := parseS3URI(uri)
	if bucket == "" || key == "" {
		return nil, errors.Errorf("invalid S3 uri %s", uri)
	}

	svc, err := handler.client()
	if err != nil {
		handler.Logger.Errorf("Failed to create S3 session: %s", err)
		return nil, err
	}

	handler.Logger.Infof("Opening bucket %s, key %s", bucket, key)
	out, err := svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		handler.Logger.Errorf("Failed to download bucket %s, key %s", bucket, key)
		return nil, errors.Wrapf(err, "failed to download %s", uri)
	}
	return out.Body, nil
}

func (handler *S3FileHandler) client() (s3iface.S3API, error) {
	if handler.Client != nil {
		return handler.Client, nil
	}
	sess, err := handler.createSession()
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

func (handler *S3FileHandler) createSession() (*session.Session, error) {
	sess := session.Must(session.NewSession())

	config := aws.Config{
		Region: aws.String("us-east-1"),
	}

	if handler.Endpoint != "" {
		config.S3ForcePathStyle = aws.Bool(true)
		config.Endpoint = &handler.Endpoint
	}

	if handler.AssumeRoleArn != "" {
		config.Credentials = stscreds.NewCredentials(
			sess,
			handler.AssumeRoleArn,
		)
	}

	return session.NewSessionWithOptions(session.Options{
		Config: config,
	})
}

// parseS3URI splits s3://my-bucket/path/to/file into "my-bucket" and "path/to/file".
func parseS3URI(str string) (bucket string, key string) {
	workingString := strings.TrimPrefix(str, "s3://")
	resultArr := strings.SplitN(workingString, "/", 2)

	if len(resultArr) == 1 {
		return resultArr[0], ""
	}

	return resultArr[0], resultArr[1]
}
