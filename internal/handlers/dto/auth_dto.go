package dto

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse é o payload de autenticação: o perfil com permissões
// efetivas e a credencial (também entregue como cookie httpOnly)
type LoginResponse struct {
	User  ProfileResponse `json:"user"`
	Token string          `json:"token"`
}

// ChangePasswordRequest representa a troca de senha autenticada
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// ForgotPasswordRequest inicia a redefinição de senha
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consome o token de redefinição
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// MessageResponse é uma resposta simples com mensagem
type MessageResponse struct {
	Message string `json:"message"`
}
