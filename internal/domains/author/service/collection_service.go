package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/shared/result"
)

type collectionService struct {
	repo repository.Repository
}

func NewCollectionService(repo repository.Repository) CollectionService {
	return &collectionService{repo: repo}
}

// GetAuthorsByIDs resolves a comma-separated id list. Malformed tokens are
// ignored; duplicates collapse to one. All requested authors must exist.
func (s *collectionService) GetAuthorsByIDs(ctx context.Context, csv string) (result.Result[[]model.AuthorResponse], error) {
	ids := parseIDs(csv)
	if len(ids) == 0 {
		return result.Failure[[]model.AuthorResponse](result.BadRequest, "No valid author IDs provided."), nil
	}

	authors, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return result.Result[[]model.AuthorResponse]{}, err
	}

	if len(authors) != len(ids) {
		found := make(map[int64]bool, len(authors))
		for _, a := range authors {
			found[a.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, strconv.FormatInt(id, 10))
			}
		}
		msg := fmt.Sprintf("Some authors not found. Missing IDs: %s", strings.Join(missing, ", "))
		return result.Failure[[]model.AuthorResponse](result.NotFound, msg), nil
	}

	return result.Success(model.ToAuthorResponses(authors)), nil
}

// CreateAuthors creates a batch atomically. Identifications must be unique
// both within the payload and against stored authors.
func (s *collectionService) CreateAuthors(ctx context.Context, reqs []model.CreateAuthorRequest) (result.Result[[]model.AuthorResponse], error) {
	if len(reqs) == 0 {
		return result.Failure[[]model.AuthorResponse](result.BadRequest, "The list of authors cannot be empty."), nil
	}

	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			msg := fmt.Sprintf("author %d: %s", i+1, err.Error())
			return result.Failure[[]model.AuthorResponse](result.BadRequest, msg), nil
		}
	}

	seen := make(map[string]bool)
	var idents []string
	var duplicates []string
	for _, req := range reqs {
		if req.Identification == nil || *req.Identification == "" {
			continue
		}
		ident := *req.Identification
		if seen[ident] {
			duplicates = append(duplicates, ident)
			continue
		}
		seen[ident] = true
		idents = append(idents, ident)
	}
	if len(duplicates) > 0 {
		msg := fmt.Sprintf("Duplicate identifications found in input: %s", strings.Join(duplicates, ", "))
		return result.Failure[[]model.AuthorResponse](result.BadRequest, msg), nil
	}

	if len(idents) > 0 {
		existing, err := s.repo.ExistingIdentifications(ctx, idents)
		if err != nil {
			return result.Result[[]model.AuthorResponse]{}, err
		}
		if len(existing) > 0 {
			msg := fmt.Sprintf("Some authors already exist with these identifications: %s", strings.Join(existing, ", "))
			return result.Failure[[]model.AuthorResponse](result.BadRequest, msg), nil
		}
	}

	authors := make([]model.Author, 0, len(reqs))
	for _, req := range reqs {
		authors = append(authors, model.Author{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Identification: normalizeIdentification(req.Identification),
		})
	}

	created, err := s.repo.CreateBatch(ctx, authors)
	if err != nil {
		return result.Result[[]model.AuthorResponse]{}, err
	}
	return result.Success(model.ToAuthorResponses(created)), nil
}

func parseIDs(csv string) []int64 {
	var ids []int64
	seen := make(map[int64]bool)
	for _, token := range strings.Split(csv, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
