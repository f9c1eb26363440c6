package http

import (
	"context"
	"net/http"
	"testing"

	domain "pawhome-backend/internal/domain/application"
	petDomain "pawhome-backend/internal/domain/pet"
	"pawhome-backend/internal/domain/uow"
	"pawhome-backend/internal/domain/user"
	"pawhome-backend/internal/testutil/appmock"
	"pawhome-backend/internal/testutil/petmock"
	"pawhome-backend/internal/testutil/uowmock"
	appuc "pawhome-backend/internal/usecase/application"

	"gorm.io/gorm"
)

const (
	handlerPetID = "feedfacefeedfacefeedfacefeedface"
	handlerAppID = "a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1a1"
)

func newApplicationHandler(pets *petmock.Repo, apps *appmock.Repo) *ApplicationHandler {
	return NewApplicationHandler(appuc.NewUsecase(pets, apps, uowmock.Passthrough(uow.Repos{Pets: pets, Applications: apps})))
}

func TestSubmitApplication_UserIDComesFromToken(t *testing.T) {
	e := newEcho()
	tokens := testTokens()
	var created *domain.Application
	h := newApplicationHandler(
		&petmock.Repo{GetByPetIDFn: func(ctx context.Context, petID string) (*petDomain.Pet, error) {
			return &petDomain.Pet{PetID: petID, Status: petDomain.StatusAvailable}, nil
		}},
		&appmock.Repo{
			FindActiveByPetAndUserFn: func(ctx context.Context, petID, userID string) (*domain.Application, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, a *domain.Application) error {
				created = a
				return nil
			},
		},
	)

	token, err := tokens.Generate("cafecafecafecafecafecafecafecafe", "sam@example.com", user.RoleUser)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	body := `{"pet_id": "` + handlerPetID + `", "user_name": "Sam", "application_message": "big yard"}`
	rec := performAuthed(t, e, tokens, h.SubmitApplication, http.MethodPost, "/api/v1/applications", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}

	if created == nil {
		t.Fatal("nothing persisted")
	}
	// the applicant is whoever the token says, not whatever the body claims
	if created.UserID != "cafecafecafecafecafecafecafecafe" {
		t.Fatalf("user_id = %s", created.UserID)
	}
}

func TestSubmitApplication_Unauthenticated(t *testing.T) {
	e := newEcho()
	tokens := testTokens()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{})

	body := `{"pet_id": "` + handlerPetID + `", "user_name": "Sam", "application_message": "big yard"}`
	rec := performAuthed(t, e, tokens, h.SubmitApplication, http.MethodPost, "/api/v1/applications", body, "")
	wantEnvelopeError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestSubmitApplication_BadPetID(t *testing.T) {
	e := newEcho()
	tokens := testTokens()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{})

	token, _ := tokens.Generate("cafecafecafecafecafecafecafecafe", "sam@example.com", user.RoleUser)
	body := `{"pet_id": "nope", "user_name": "Sam", "application_message": "big yard"}`
	rec := performAuthed(t, e, tokens, h.SubmitApplication, http.MethodPost, "/api/v1/applications", body, token)
	env := wantEnvelopeError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	if !hasFieldError(env, "pet_id") {
		t.Fatalf("missing pet_id error: %+v", env.Errors)
	}
}

func TestSubmitApplication_PetNotAvailable(t *testing.T) {
	e := newEcho()
	tokens := testTokens()
	h := newApplicationHandler(
		&petmock.Repo{GetByPetIDFn: func(ctx context.Context, petID string) (*petDomain.Pet, error) {
			return &petDomain.Pet{PetID: petID, Status: petDomain.StatusAdopted}, nil
		}},
		&appmock.Repo{},
	)

	token, _ := tokens.Generate("cafecafecafecafecafecafecafecafe", "sam@example.com", user.RoleUser)
	body := `{"pet_id": "` + handlerPetID + `", "user_name": "Sam", "application_message": "big yard"}`
	rec := performAuthed(t, e, tokens, h.SubmitApplication, http.MethodPost, "/api/v1/applications", body, token)
	wantEnvelopeError(t, rec, http.StatusBadRequest, "PET_NOT_AVAILABLE")
}

func TestSetApplicationStatus_RejectsUnknownStatus(t *testing.T) {
	e := newEcho()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{})

	rec := perform(t, e, h.SetApplicationStatus, http.MethodPatch,
		"/api/v1/applications/"+handlerAppID+"/status", `{"application_status": "Maybe"}`, handlerAppID)
	env := wantEnvelopeError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	if !hasFieldError(env, "application_status") {
		t.Fatalf("missing application_status error: %+v", env.Errors)
	}
}

func TestSetApplicationStatus_NotFound(t *testing.T) {
	e := newEcho()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	rec := perform(t, e, h.SetApplicationStatus, http.MethodPatch,
		"/api/v1/applications/"+handlerAppID+"/status", `{"application_status": "Rejected"}`, handlerAppID)
	wantEnvelopeError(t, rec, http.StatusNotFound, "APPLICATION_NOT_FOUND")
}

func TestListApplications_FilterValidation(t *testing.T) {
	e := newEcho()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{})

	rec := perform(t, e, h.ListApplications, http.MethodGet,
		"/api/v1/applications?user_id=short&application_status=Maybe", "", "")
	env := wantEnvelopeError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	for _, field := range []string{"user_id", "application_status"} {
		if !hasFieldError(env, field) {
			t.Errorf("missing field error for %s: %+v", field, env.Errors)
		}
	}
}

func TestListApplications_OK(t *testing.T) {
	e := newEcho()
	var gotFilter domain.ListFilter
	h := newApplicationHandler(
		&petmock.Repo{FindByPetIDsFn: func(ctx context.Context, petIDs []string) ([]petDomain.Pet, error) {
			return []petDomain.Pet{{PetID: handlerPetID, Name: "Biscuit"}}, nil
		}},
		&appmock.Repo{ListFn: func(ctx context.Context, f domain.ListFilter, page, limit int) ([]domain.Application, int64, error) {
			gotFilter = f
			return []domain.Application{{ApplicationID: handlerAppID, PetID: handlerPetID}}, 1, nil
		}},
	)

	rec := perform(t, e, h.ListApplications, http.MethodGet,
		"/api/v1/applications?pet_id="+handlerPetID+"&application_status=Pending", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	if gotFilter.PetID != handlerPetID || gotFilter.Status != domain.StatusPending {
		t.Fatalf("filter: %+v", gotFilter)
	}

	env := decodeEnvelope(t, rec)
	data, _ := env.Data.(map[string]any)
	apps, _ := data["applications"].([]any)
	if len(apps) != 1 {
		t.Fatalf("applications payload: %+v", data)
	}
	row, _ := apps[0].(map[string]any)
	pet, _ := row["pet"].(map[string]any)
	if pet["pet_name"] != "Biscuit" {
		t.Fatalf("joined pet: %+v", row)
	}
}

func TestArchiveApplication_OK(t *testing.T) {
	e := newEcho()
	h := newApplicationHandler(&petmock.Repo{}, &appmock.Repo{
		GetByApplicationIDAnyFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return &domain.Application{ApplicationID: id}, nil
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error { return nil },
	})

	rec := perform(t, e, h.ArchiveApplication, http.MethodDelete,
		"/api/v1/applications/"+handlerAppID, "", handlerAppID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := decodeEnvelope(t, rec).Data.(map[string]any)
	if data["message"] != "Application deleted successfully" {
		t.Fatalf("data: %+v", data)
	}
}
