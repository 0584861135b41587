package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// ExportLinkValidity is how long a published export can be downloaded.
const ExportLinkValidity = 15 * time.Minute

var csvHeader = []string{"Date", "Client", "Project", "Description", "Duration (minutes)", "Duration (hours)", "Invoiced"}

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) error {
		_, err := c.PutObject(ctx, in, optFns...)
		return err
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ExportFileName is the download name for an export made at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("time-entries-%s.csv", t.Format(time.DateOnly))
}

// WriteEntriesCSV renders entries in the invoicing export format.
func WriteEntriesCSV(w io.Writer, entries []*models.TimeEntry) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		invoiced := "No"
		if e.Invoiced {
			invoiced = "Yes"
		}
		record := []string{
			e.CreatedAt.UTC().Format(time.DateOnly),
			e.ClientName(),
			e.ProjectName(),
			description,
			strconv.Itoa(e.Duration),
			timex.FormatHours(e.Duration),
			invoiced,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the entries matching f to w.
func (s *EntryService) ExportCSV(ctx context.Context, f models.EntryFilter, w io.Writer) error {
	entries, err := s.List(ctx, f)
	if err != nil {
		return err
	}
	return WriteEntriesCSV(w, entries)
}

// PublishedExport locates an uploaded export.
type PublishedExport struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ExportKey returns a unique object key for an export made at t.
func ExportKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("exports/%04d/%02d/%02d/time-entries-%s-%s.csv",
		t.Year(), t.Month(), t.Day(), t.Format(time.DateOnly), newID())
}

func (s *EntryService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// PublishExport uploads the CSV for f to the export bucket and returns a
// presigned download link valid for ExportLinkValidity.
func (s *EntryService) PublishExport(ctx context.Context, f models.EntryFilter) (*PublishedExport, error) {
	if s.config == nil || s.config.S3Bucket == "" {
		return nil, common.ErrorConfig
	}

	var buf bytes.Buffer
	if err := s.ExportCSV(ctx, f, &buf); err != nil {
		return nil, err
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring s3: %w", err)
	}

	bucket := s.config.S3Bucket
	key := ExportKey(s.now())

	err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:             &bucket,
		Key:                &key,
		Body:               bytes.NewReader(buf.Bytes()),
		ContentType:        aws.String("text/csv"),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", ExportFileName(s.now()))),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportLinkValidity))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &PublishedExport{Key: key, URL: req.URL}, nil
}
