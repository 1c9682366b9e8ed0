package service

import (
	"context"
	"fmt"

	"study-assistant/internal/model"
	"study-assistant/internal/repository"
	"study-assistant/pkg/log"
)

// DefaultResources 是资源表为空时写入的初始学习资源。
var DefaultResources = []model.StudyResource{
	{Title: "Khan Academy Mathematics", Description: "Comprehensive math courses from basic arithmetic to advanced calculus", Subject: "Mathematics", URL: "https://www.khanacademy.org/math", Type: "Course", Difficulty: "Beginner"},
	{Title: "MIT OpenCourseWare Physics", Description: "Free physics courses from MIT including classical mechanics and quantum physics", Subject: "Physics", URL: "https://ocw.mit.edu/courses/physics/", Type: "Course", Difficulty: "Intermediate"},
	{Title: "Introduction to Algorithms", Description: "Classic computer science textbook covering algorithms and data structures", Subject: "Computer Science", URL: "https://mitpress.mit.edu/book/introduction-algorithms-third-edition", Type: "Book", Difficulty: "Advanced"},
	{Title: "Engineering Mathematics", Description: "Essential mathematical concepts for engineering students", Subject: "Engineering", URL: "https://www.engineering.com/", Type: "Article", Difficulty: "Intermediate"},
	{Title: "Chemistry Basics", Description: "Fundamental concepts of chemistry including atomic structure and chemical reactions", Subject: "Chemistry", URL: "https://www.chemguide.co.uk/", Type: "Article", Difficulty: "Beginner"},
	{Title: "Biology: The Study of Life", Description: "Introduction to biological concepts and living organisms", Subject: "Biology", URL: "https://www.khanacademy.org/science/biology", Type: "Course", Difficulty: "Beginner"},
}

// ResourceService 定义了学习资源目录的业务逻辑接口。
type ResourceService interface {
	List(ctx context.Context) ([]model.StudyResource, error)
	EnsureSeeded(ctx context.Context) error
}

type resourceService struct {
	repo repository.ResourceRepository
}

// NewResourceService 创建一个新的 ResourceService 实例。
func NewResourceService(repo repository.ResourceRepository) ResourceService {
	return &resourceService{repo: repo}
}

// List 返回全部学习资源，最新的在前。
func (s *resourceService) List(ctx context.Context) ([]model.StudyResource, error) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// EnsureSeeded 在资源表为空时写入默认资源，可重复调用。
func (s *resourceService) EnsureSeeded(ctx context.Context) error {
	seeded, err := s.repo.SeedIfEmpty(ctx, DefaultResources)
	if err != nil {
		return fmt.Errorf("failed to seed resources: %w", err)
	}
	if seeded {
		log.Infof("已写入 %d 条默认学习资源", len(DefaultResources))
	}
	return nil
}
