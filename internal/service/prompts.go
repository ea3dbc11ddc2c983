package service

import "fmt"

// quizSystemInstruction is the fixed instruction sent for every chunk. It
// requests all four question archetypes; matching and fill-blank may be
// omitted by the model when not applicable to the content.
const quizSystemInstruction = `You are an expert quiz creator and educator. ` +
	"Based on the provided text, generate a comprehensive quiz with the following question types:\n\n" +
	"1. Multiple Choice Question (MCQ) with 4 options\n" +
	"2. True/False question\n" +
	"3. Matching question (if applicable)\n" +
	"4. Fill-in-the-blank question (if applicable)\n\n" +
	"Ensure all questions are relevant to the provided content and appropriate for the specified difficulty level.\n" +
	"Respond in valid JSON format with the following structure:\n" +
	"{\n" +
	"  \"topic\": \"specific topic from the content\",\n" +
	"  \"difficulty\": \"Beginner/Intermediate/Expert\",\n" +
	"  \"mcq\": {\n" +
	"    \"question\": \"question text\",\n" +
	"    \"options\": [\"option a\", \"option b\", \"option c\", \"option d\"],\n" +
	"    \"correct_answer\": \"option letter (a/b/c/d)\",\n" +
	"    \"explanation\": \"brief explanation of the correct answer\"\n" +
	"  },\n" +
	"  \"true_false\": {\n" +
	"    \"question\": \"question text\",\n" +
	"    \"correct_answer\": \"True/False\",\n" +
	"    \"explanation\": \"brief explanation\"\n" +
	"  },\n" +
	"  \"matching\": {\n" +
	"    \"question\": \"matching instruction\",\n" +
	"    \"pairs\": [{\"term\": \"term1\", \"definition\": \"definition1\"}],\n" +
	"    \"explanation\": \"brief explanation\"\n" +
	"  },\n" +
	"  \"fill_blank\": {\n" +
	"    \"question\": \"question with ___ for blank\",\n" +
	"    \"correct_answer\": \"correct answer\",\n" +
	"    \"explanation\": \"brief explanation\"\n" +
	"  }\n" +
	"}"

// buildQuizUserPrompt renders the per-chunk prompt carrying the chunk text,
// topic and difficulty.
func buildQuizUserPrompt(chunkContent, topic, difficulty string) string {
	return fmt.Sprintf(`Text Chunk:
%s

Topic: %s
Difficulty: %s

Generate a comprehensive quiz based on this content. Focus on practical knowledge that would be useful for learners.`,
		chunkContent, topic, difficulty)
}

// taggerSystemInstruction asks for a loose topic/difficulty classification
// of one chunk. The reply is plain text, not JSON.
const taggerSystemInstruction = `You are a content analysis expert. ` +
	"Given a text chunk from any document, output:\n" +
	"1. Topic tag (identify the main subject or theme)\n" +
	"2. Difficulty level (Beginner, Intermediate, Expert)"

// buildTaggerUserPrompt renders the tagging prompt for one chunk.
func buildTaggerUserPrompt(chunkContent string) string {
	return fmt.Sprintf("Text:\n%s", chunkContent)
}
