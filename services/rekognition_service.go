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

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// SuggestItemName detects labels in a base64-encoded photo of the food and
// returns the most confident one, for pre-filling the item name at upload.
func (r *RekognitionService) SuggestItemName(base64Img string) (string, error) {
	comma := strings.IndexByte(base64Img, ',')
	if comma < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return "", errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[comma+1:])
	if err != nil {
		return "", err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return "", err
	}

	if len(out.Labels) == 0 {
		return "", errors.New("no labels detected")
	}
	return aws.ToString(out.Labels[0].Name), nil
}
