package usecase

import (
	"photovault/internal/domain/dto"
	"photovault/internal/domain/model"
)

func toDescriptors(images []model.Image) []dto.ImageDescriptor {
	descriptors := make([]dto.ImageDescriptor, 0, len(images))
	for i := range images {
		descriptors = append(descriptors, toDescriptor(&images[i]))
	}

	return descriptors
}

func toDescriptor(image *model.Image) dto.ImageDescriptor {
	return dto.ImageDescriptor{
		ID:          image.ID,
		Name:        image.Name,
		URL:         image.URL,
		Size:        image.Size,
		ContentType: image.ContentType,
		UploadedAt:  image.UploadedAt,
	}
}
