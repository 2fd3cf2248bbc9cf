package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// PhotoService screens uploaded baby photos before they are stored.
type PhotoService struct {
	client *rekognition.Client
}

func NewPhotoService() (*PhotoService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &PhotoService{client: rekognition.NewFromConfig(cfg)}, nil
}

// Moderate returns the moderation labels found in a base64-encoded
// photo ("data:image/...;base64,..."). An empty result means the photo
// is fine to store.
func (p *PhotoService) Moderate(base64Img string) ([]string, error) {
	if !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	idx := strings.Index(base64Img, ",")
	if idx < 0 {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := p.client.DetectModerationLabels(context.TODO(), &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(80),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.ModerationLabels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}
