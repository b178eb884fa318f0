package utils

import (
	"preplan-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	input.StudentID = strings.TrimSpace(input.StudentID)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.StudentID = strings.TrimSpace(input.StudentID)
}

func SanitizeSaveRoutineRequest(input *requests.SaveRoutine) {
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeMergeRoutinesRequest(input *requests.MergeRoutines) {
	for i := range input.Contributors {
		input.Contributors[i].Label = strings.TrimSpace(input.Contributors[i].Label)
		input.Contributors[i].Color = strings.TrimSpace(input.Contributors[i].Color)
		input.Contributors[i].Encoded = strings.TrimSpace(input.Contributors[i].Encoded)
	}
}

func SanitizeCreateSwapRequest(input *requests.CreateSwap) {
	input.Note = strings.TrimSpace(input.Note)
}
