package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación (login).
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales inválidas y usuario inexistente devuelven el mismo error
// para no filtrar qué emails existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrUnauthorized
	}
	empresaID := ""
	if u.EmpresaID != nil {
		empresaID = *u.EmpresaID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, empresaID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUsuarioResponse(u),
	}, nil
}
