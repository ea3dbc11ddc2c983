package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "generation",
			objectType:  "reply",
			identifier:  "3f2a9c",
			paramsKey:   nil,
			expectedKey: "quizforge:generation:reply:3f2a9c",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "generation",
			objectType:  "reply",
			identifier:  "3f2a9c",
			paramsKey:   []string{},
			expectedKey: "quizforge:generation:reply:3f2a9c",
		},
		{
			name:        "with one paramsKey",
			serviceName: "tagger",
			objectType:  "tag",
			identifier:  "ab12",
			paramsKey:   []string{"gpt-3.5-turbo"},
			expectedKey: "quizforge:tagger:tag:ab12:gpt-3.5-turbo",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "generation",
			objectType:  "reply",
			identifier:  "ab12",
			paramsKey:   []string{"General", "Intermediate", "gpt-3.5-turbo"},
			expectedKey: "quizforge:generation:reply:ab12:General_Intermediate_gpt-3.5-turbo",
		},
		{
			name:        "with paramsKey containing special characters",
			serviceName: "generation",
			objectType:  "reply",
			identifier:  "id",
			paramsKey:   []string{"Risk-Management", "chunk_7"},
			expectedKey: "quizforge:generation:reply:id:Risk-Management_chunk_7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
