package utils

import (
	"arogya-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Username = strings.TrimSpace(input.Username)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeSearchPatientRequest(input *requests.SearchPatient) {
	input.Username = strings.TrimSpace(input.Username)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeRecordDiseaseRequest(input *requests.RecordDisease) {
	input.Disease = strings.TrimSpace(input.Disease)
	input.WorkerName = strings.TrimSpace(input.WorkerName)
	input.WorkerAshaID = strings.TrimSpace(input.WorkerAshaID)
	input.WorkerMobile = strings.TrimSpace(input.WorkerMobile)
}

func SanitizeRegisterWorkerRequest(input *requests.RegisterWorker) {
	input.Name = strings.TrimSpace(input.Name)
	input.AshaID = strings.TrimSpace(input.AshaID)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Education = strings.TrimSpace(input.Education)
	input.Village = strings.TrimSpace(input.Village)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeLoginWorkerRequest(input *requests.LoginWorker) {
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeUpdateWorkerRequest(input *requests.UpdateWorker) {
	input.Name = strings.TrimSpace(input.Name)
	input.AshaID = strings.TrimSpace(input.AshaID)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Education = strings.TrimSpace(input.Education)
	input.Village = strings.TrimSpace(input.Village)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeAnalyzeImageRequest(input *requests.AnalyzeImage) {
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Age = strings.TrimSpace(input.Age)
	input.Notes = strings.TrimSpace(input.Notes)
	input.WorkerName = strings.TrimSpace(input.WorkerName)
	input.WorkerAshaID = strings.TrimSpace(input.WorkerAshaID)
	input.WorkerMobile = strings.TrimSpace(input.WorkerMobile)
}
