package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/model"
	"github.com/dzinstall/storefront/internal/notification"
	pkgAuth "github.com/dzinstall/storefront/internal/pkg/auth"
	"github.com/dzinstall/storefront/internal/store"
)

// RegisterInput is a customer sign-up form. Document fields carry references
// to already uploaded files.
type RegisterInput struct {
	FirstName        string `json:"firstName" validate:"required,latin"`
	LastName         string `json:"lastName" validate:"required,latin"`
	BirthDate        string `json:"birthDate" validate:"required"`
	Phone1           string `json:"phone1" validate:"required"`
	Phone2           string `json:"phone2"`
	Email            string `json:"email" validate:"required,email"`
	Wilaya           string `json:"wilaya" validate:"required,wilaya"`
	Baladyia         string `json:"baladyia" validate:"required"`
	Address          string `json:"address" validate:"required"`
	CCPNumber        string `json:"ccpNumber" validate:"required"`
	CCPKey           string `json:"ccpKey" validate:"required,max=2"`
	NIN              string `json:"nin" validate:"required"`
	NINExpiry        string `json:"ninExpiry" validate:"required"`
	IDCardFront      string `json:"idCardFront" validate:"required"`
	IDCardBack       string `json:"idCardBack" validate:"required"`
	ChequeImage      string `json:"chequeImage" validate:"required"`
	AccountStatement string `json:"accountStatement" validate:"required"`
	Password         string `json:"password" validate:"required"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// BootstrapOptions controls the accounts created or updated at start-up.
type BootstrapOptions struct {
	AdminPhone    string
	AdminPassword string
	SeedPassword  string
}

// AccountUseCase handles sign-up, sign-in and profile lookups.
type AccountUseCase struct {
	store    *store.Store
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
	sessions *SessionRegistry
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(
	st *store.Store,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	sessions *SessionRegistry,
	validate *validator.Validate,
	logger *slog.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		store:    st,
		hasher:   hasher,
		tokens:   strategy,
		sessions: sessions,
		validate: validate,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a customer account, signs it in and returns its token.
func (u *AccountUseCase) Register(ctx context.Context, in RegisterInput) (model.User, string, error) {
	usr, err := u.CreateCustomer(ctx, in)
	if err != nil {
		return model.User{}, "", err
	}

	token, err := u.tokens.IssueToken(usr.Phone1)
	if err != nil {
		return model.User{}, "", err
	}
	u.sessions.Start(usr.Phone1, false)

	return usr, token, nil
}

// CreateCustomer validates and stores a new customer without signing in.
func (u *AccountUseCase) CreateCustomer(ctx context.Context, in RegisterInput) (model.User, error) {
	trimFields(&in)
	if err := validateStruct(u.validate, in); err != nil {
		return model.User{}, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	stamp := u.now().UTC().Format(time.RFC3339)
	usr := model.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		BirthDate:        in.BirthDate,
		Phone1:           in.Phone1,
		Phone2:           in.Phone2,
		Email:            in.Email,
		Wilaya:           in.Wilaya,
		Baladyia:         in.Baladyia,
		Address:          in.Address,
		CCPNumber:        in.CCPNumber,
		CCPKey:           in.CCPKey,
		NIN:              in.NIN,
		NINExpiry:        in.NINExpiry,
		Role:             model.RoleCustomer,
		RegistrationDate: stamp,
		LastLoginDate:    stamp,
		IDCardFront:      in.IDCardFront,
		IDCardBack:       in.IDCardBack,
		ChequeImage:      in.ChequeImage,
		AccountStatement: in.AccountStatement,
		PasswordHash:     hash,
	}

	err = u.store.Update(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		if err := checkDuplicates(users, usr); err != nil {
			return err
		}
		return tx.SaveUsers(append(users, usr))
	})
	if err != nil {
		return model.User{}, err
	}

	u.logger.Info("customer registered", slog.String("phone", usr.Phone1))
	return publicUser(usr), nil
}

func checkDuplicates(users []model.User, candidate model.User) error {
	for _, existing := range users {
		switch {
		case existing.Email != "" && existing.Email == candidate.Email:
			return &domainErrors.DuplicateError{Field: "email"}
		case existing.Phone1 == candidate.Phone1:
			return &domainErrors.DuplicateError{Field: "phone1"}
		case existing.CCPNumber != "" && existing.CCPNumber == candidate.CCPNumber:
			return &domainErrors.DuplicateError{Field: "ccpNumber"}
		case existing.NIN != "" && existing.NIN == candidate.NIN:
			return &domainErrors.DuplicateError{Field: "nin"}
		}
	}
	return nil
}

// Login accepts an email, phone1 or CCP number as identifier. It resets the
// session: ignored prompts are forgotten, the unread flag reflects pending
// orders and an admin lands on the dashboard again.
func (u *AccountUseCase) Login(ctx context.Context, identifier, password string) (model.User, string, error) {
	if identifier == "" || password == "" {
		return model.User{}, "", domainErrors.ErrInvalidCredentials
	}

	var (
		usr    model.User
		unread bool
	)
	err := u.store.Update(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		idx := -1
		for i, candidate := range users {
			if candidate.Email != identifier && candidate.Phone1 != identifier && candidate.CCPNumber != identifier {
				continue
			}
			if u.hasher.Compare(candidate.PasswordHash, password) == nil {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domainErrors.ErrInvalidCredentials
		}

		users[idx].LastLoginDate = u.now().UTC().Format(time.RFC3339)
		usr = users[idx]
		if err := tx.SaveUsers(users); err != nil {
			return err
		}
		if usr.IsAdmin() {
			if err := tx.ResetAdminView(usr.Phone1); err != nil {
				return err
			}
		}

		orders, err := tx.Orders()
		if err != nil {
			return err
		}
		unread = notification.HasUnread(usr.Phone1, orders)
		return nil
	})
	if err != nil {
		return model.User{}, "", err
	}

	token, err := u.tokens.IssueToken(usr.Phone1)
	if err != nil {
		return model.User{}, "", err
	}
	u.sessions.Start(usr.Phone1, unread && !usr.IsAdmin())

	return publicUser(usr), token, nil
}

// Logout drops the in-process session of phone.
func (u *AccountUseCase) Logout(_ context.Context, phone string) {
	u.sessions.End(phone)
}

// ParseToken returns the phone encoded in token.
func (u *AccountUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Me returns the profile of phone without its password hash.
func (u *AccountUseCase) Me(ctx context.Context, phone string) (model.User, error) {
	var usr model.User
	err := u.store.View(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, candidate := range users {
			if candidate.Phone1 == phone {
				usr = candidate
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", phone, domainErrors.ErrNotFound)
	})
	if err != nil {
		return model.User{}, err
	}
	return publicUser(usr), nil
}

// Bootstrap seeds missing collections, upserts the admin account and gives
// seeded customers a password when one is configured.
func (u *AccountUseCase) Bootstrap(ctx context.Context, opts BootstrapOptions) error {
	if err := u.store.Seed(ctx); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	if opts.AdminPhone == "" && opts.SeedPassword == "" {
		return nil
	}

	var adminHash, seedHash string
	var err error
	if opts.AdminPhone != "" {
		if adminHash, err = u.hasher.Hash(opts.AdminPassword); err != nil {
			return err
		}
	}
	if opts.SeedPassword != "" {
		if seedHash, err = u.hasher.Hash(opts.SeedPassword); err != nil {
			return err
		}
	}

	return u.store.Update(ctx, func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}

		if seedHash != "" {
			for i := range users {
				if users[i].PasswordHash == "" && !users[i].IsAdmin() {
					users[i].PasswordHash = seedHash
				}
			}
		}

		if adminHash != "" {
			users = upsertAdmin(users, opts.AdminPhone, adminHash, u.now().UTC().Format(time.RFC3339))
			u.logger.Info("admin account ready", slog.String("phone", opts.AdminPhone))
		}

		return tx.SaveUsers(users)
	})
}

func upsertAdmin(users []model.User, phone, hash, stamp string) []model.User {
	for i := range users {
		if users[i].Phone1 == phone {
			users[i].Role = model.RoleAdmin
			users[i].PasswordHash = hash
			return users
		}
	}
	return append(users, model.User{
		FirstName:        "Admin",
		Phone1:           phone,
		Role:             model.RoleAdmin,
		RegistrationDate: stamp,
		PasswordHash:     hash,
	})
}

func publicUser(u model.User) model.User {
	u.PasswordHash = ""
	return u
}
