package bookmark

import (
	"context"
	"errors"
	"testing"
	"time"

	domainBookmark "ideafund-backend/internal/domain/bookmark"
	domainIdea "ideafund-backend/internal/domain/idea"
	"ideafund-backend/internal/testutil/bookmarkmock"
	"ideafund-backend/internal/testutil/ideamock"

	"gorm.io/gorm"
)

const (
	userHexID = "11111111111111111111111111111111"
	ideaHexID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func singleIdeaRepo() *ideamock.Repo {
	row := domainIdea.Idea{ID: 7, IdeaID: ideaHexID, Title: "Solar microgrids", Industry: "energy", Stage: domainIdea.StageMVP}
	return &ideamock.Repo{
		GetByIdeaIDFn: func(ctx context.Context, ideaID string) (*domainIdea.Idea, error) {
			if ideaID != row.IdeaID {
				return nil, gorm.ErrRecordNotFound
			}
			cp := row
			return &cp, nil
		},
		ListByIDsFn: func(ctx context.Context, ids []uint64) ([]domainIdea.Idea, error) {
			for _, id := range ids {
				if id == row.ID {
					return []domainIdea.Idea{row}, nil
				}
			}
			return nil, nil
		},
	}
}

// markSet is an in-memory stand-in for the bookmarks table with its
// unique (idea, user) pair.
type markSet struct {
	rows map[uint64]map[string]time.Time
}

func newMarkSet() *markSet { return &markSet{rows: map[uint64]map[string]time.Time{}} }

func (s *markSet) repo() *bookmarkmock.Repo {
	return &bookmarkmock.Repo{
		AddFn: func(ctx context.Context, b *domainBookmark.Bookmark) error {
			if s.rows[b.IdeaID] == nil {
				s.rows[b.IdeaID] = map[string]time.Time{}
			}
			if _, ok := s.rows[b.IdeaID][b.UserID]; !ok {
				s.rows[b.IdeaID][b.UserID] = time.Now().UTC()
			}
			return nil
		},
		RemoveFn: func(ctx context.Context, ideaID uint64, userID string) error {
			delete(s.rows[ideaID], userID)
			return nil
		},
		CountByIdeaIDFn: func(ctx context.Context, ideaID uint64) (int64, error) {
			return int64(len(s.rows[ideaID])), nil
		},
		ListByUserIDFn: func(ctx context.Context, userID string) ([]domainBookmark.Bookmark, error) {
			var out []domainBookmark.Bookmark
			for ideaID, users := range s.rows {
				if at, ok := users[userID]; ok {
					out = append(out, domainBookmark.Bookmark{IdeaID: ideaID, UserID: userID, CreatedAt: at})
				}
			}
			return out, nil
		},
	}
}

func TestAdd_Idempotent(t *testing.T) {
	marks := newMarkSet()
	uc := NewUsecase(singleIdeaRepo(), marks.repo())

	first, err := uc.Add(context.Background(), ideaHexID, userHexID)
	if err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if !first.Bookmarked || first.Count != 1 {
		t.Fatalf("dto=%+v", first)
	}

	again, err := uc.Add(context.Background(), ideaHexID, userHexID)
	if err != nil {
		t.Fatalf("repeat Add err: %v", err)
	}
	if again.Count != 1 {
		t.Fatalf("count after repeat add=%d", again.Count)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	marks := newMarkSet()
	uc := NewUsecase(singleIdeaRepo(), marks.repo())

	if _, err := uc.Add(context.Background(), ideaHexID, userHexID); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	dto, err := uc.Remove(context.Background(), ideaHexID, userHexID)
	if err != nil {
		t.Fatalf("Remove err: %v", err)
	}
	if dto.Bookmarked || dto.Count != 0 {
		t.Fatalf("dto=%+v", dto)
	}

	// removing a bookmark that is already gone is a no-op
	if _, err := uc.Remove(context.Background(), ideaHexID, userHexID); err != nil {
		t.Fatalf("repeat Remove err: %v", err)
	}
}

func TestAdd_UnknownIdea(t *testing.T) {
	uc := NewUsecase(singleIdeaRepo(), newMarkSet().repo())
	_, err := uc.Add(context.Background(), "ffffffffffffffffffffffffffffffff", userHexID)
	if !errors.Is(err, domainIdea.ErrNotFound) {
		t.Fatalf("err=%v", err)
	}
}

func TestList_JoinsIdeaDetails(t *testing.T) {
	marks := newMarkSet()
	uc := NewUsecase(singleIdeaRepo(), marks.repo())

	if _, err := uc.Add(context.Background(), ideaHexID, userHexID); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	out, err := uc.List(context.Background(), userHexID)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len=%d", len(out))
	}
	if out[0].IdeaID != ideaHexID || out[0].Title != "Solar microgrids" {
		t.Fatalf("row=%+v", out[0])
	}
}

func TestList_Empty(t *testing.T) {
	uc := NewUsecase(singleIdeaRepo(), newMarkSet().repo())
	out, err := uc.List(context.Background(), userHexID)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("out=%v", out)
	}
}
