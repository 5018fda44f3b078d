package generator

import "fmt"

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

const systemPrompt = `You are a viral short-form content expert specializing in creating scroll-stopping hooks for Instagram Reels, YouTube Shorts, and Facebook Reels.

Your expertise includes:
- Understanding platform-specific audience behavior
- Crafting emotion-driven, curiosity-based hooks
- Maximizing retention rates in the first 3 seconds
- Creating pattern interrupts that stop the scroll

Generate hooks that are conversational, direct, and create an irresistible urge to keep watching.`

const userPromptTemplate = `Generate %d high-retention viral hooks for %s.

Topic: %s

Rules:
- Maximum 12 words per hook
- Focus on emotion and curiosity
- Use conversational, direct language
- Create pattern interrupts
- No emojis or special characters
- Each hook must be unique and scroll-stopping
- Start with action words or surprising statements

Return ONLY the %d hooks as a numbered list, nothing else.`

// BuildPrompt interpolates platform and topic verbatim into the user message.
// Neither value is escaped.
func BuildPrompt(req Request) Prompt {
	return Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptTemplate, MaxHooks, req.Platform, req.Topic, MaxHooks),
	}
}
