// Package analysis turns a completed quiz session into a free-text analysis.
//
// The rules are ordered and first-match-wins: a known title keyword inside a
// recognized category selects a title-specific template, a recognized category
// alone selects the category template, and everything else falls back to the
// generic one. Each template carries trait slots filled from small fixed
// vocabularies through an injected random source, so production output varies
// while tests pin a seed and get byte-identical text.
package analysis

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"quixie-quiz-service/internal/domain"
)

// Composer derives analysis text from quiz metadata.
type Composer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewComposer builds a composer over the given random source.
func NewComposer(src rand.Source) *Composer {
	return &Composer{rnd: rand.New(src)}
}

// NewRandomComposer is the production wiring with a time-seeded source.
func NewRandomComposer() *Composer {
	return NewComposer(rand.NewSource(time.Now().UnixNano()))
}

// Compose maps the quiz's category and title to an analysis string. The
// answer log is deliberately unused here: analysis derives from metadata,
// not from answer content.
func (c *Composer) Compose(quiz domain.Quiz, _ []domain.AnswerRecord) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch quiz.Category {
	case domain.CategoryPersonality:
		return c.personality(quiz.Title)
	case domain.CategoryRelationships:
		return c.relationships(quiz.Title)
	case domain.CategoryPopCulture:
		return c.popCulture(quiz.Title)
	case domain.CategoryTrivia:
		return c.trivia()
	case domain.CategoryGeneralKnowledge:
		return c.knowledge()
	case domain.CategoryHypotheticals:
		return c.hypothetical()
	default:
		// Books has no dedicated template and shares the generic one.
		return c.generic()
	}
}

func (c *Composer) pick(words []string) string {
	return words[c.rnd.Intn(len(words))]
}

func (c *Composer) personality(title string) string {
	switch {
	case strings.Contains(title, "Leader"):
		return fmt.Sprintf("Based on your responses, you demonstrate %s leadership qualities. Your approach to decision-making shows %s tendencies, and you handle challenges with %s. You're likely to be %s in your communication style and %s in your long-term thinking.",
			c.pick(leadershipQualities), c.pick(decisionTendencies), c.pick(challengeResponses), c.pick(communicationStyles), c.pick(visionStyles))
	case strings.Contains(title, "Introvert"), strings.Contains(title, "Extrovert"):
		return fmt.Sprintf("Your responses indicate %s social preferences. You recharge through %s and prefer %s when making decisions. Your communication style is %s and you handle stress by %s.",
			c.pick(socialPreferences), c.pick(energySources), c.pick(processingModes), c.pick(expressionStyles), c.pick(copingStrategies))
	case strings.Contains(title, "Dragon"):
		return fmt.Sprintf("Your warrior spirit shows %s in facing challenges. You demonstrate %s to those you care about and %s when overcoming obstacles. Your approach to conflict is %s and your motivation comes from %s.",
			c.pick(courageTraits), c.pick(loyaltyTraits), c.pick(adaptabilityTraits), c.pick(conflictApproaches), c.pick(motivations))
	case strings.Contains(title, "Evelyn Hugo"):
		return fmt.Sprintf("Your approach to life shows %s in staying true to yourself. You handle public perception with %s and make decisions based on %s. Your relationships are characterized by %s and your legacy focus is %s.",
			c.pick(authenticityTraits), c.pick(challengeResponses), c.pick(valueBases), c.pick(relationshipDepths), c.pick(legacyFocuses))
	}
	return fmt.Sprintf("Your personality profile shows %s characteristics with %s tendencies. You approach challenges with %s and your interpersonal style is %s.",
		c.pick(primaryTraits), c.pick(secondaryTraits), c.pick(problemApproaches), c.pick(interpersonalStyles))
}

func (c *Composer) relationships(title string) string {
	switch {
	case strings.Contains(title, "Love Language"):
		return fmt.Sprintf("Your love language profile suggests you %s and feel most loved when %s. In relationships, you %s and handle conflicts by %s. Your emotional needs are %s and you show care through %s.",
			c.pick(givingStyles), c.pick(receivingStyles), c.pick(needCommunication), c.pick(conflictResolutions), c.pick(emotionalNeeds), c.pick(careExpressions))
	case strings.Contains(title, "Ready for"):
		return fmt.Sprintf("Your readiness for serious relationships shows %s emotional maturity. You handle commitment with %s and approach conflicts %s. Your communication style is %s and you manage expectations %s.",
			c.pick(maturityLevels), c.pick(commitmentStances), c.pick(conflictManners), c.pick(opennessStyles), c.pick(expectationManners))
	case strings.Contains(title, "Red Flag"):
		return fmt.Sprintf("Your relationship awareness shows you might %s certain warning signs. You tend to %s concerning behaviors and %s when it comes to personal boundaries. Your response to manipulation is %s and you %s for yourself.",
			c.pick(warningResponses), c.pick(rationalizations), c.pick(boundaryHabits), c.pick(vulnerabilityLevels), c.pick(advocacyHabits))
	}
	return fmt.Sprintf("Your relationship patterns show %s attachment style with %s communication preferences. You handle intimacy with %s and approach commitment %s.",
		c.pick(attachmentStyles), c.pick(needCommunication), c.pick(opennessStyles), c.pick(commitmentApproaches))
}

func (c *Composer) popCulture(title string) string {
	switch {
	case strings.Contains(title, "It Ends With Us"):
		return fmt.Sprintf("Your knowledge of this story shows %s connection to emotional narratives. You appreciate %s in literature and %s character complexity. Your understanding of the themes suggests %s empathy and %s social awareness.",
			c.pick(emotionalDepths), c.pick(literaryThemes), c.pick(characterQualities), c.pick(empathyLevels), c.pick(awarenessLevels))
	case strings.Contains(title, "TV Character"):
		return fmt.Sprintf("Your responses suggest you identify with %s characters. You're drawn to %s storylines and %s character traits. Your entertainment preferences show %s values and %s approach to media consumption.",
			c.pick(characterArchetypes), c.pick(storylineKinds), c.pick(characterTraits), c.pick(entertainmentValues), c.pick(mediaApproaches))
	case strings.Contains(title, "Theo or Charlie"):
		return fmt.Sprintf("Your romantic preferences align with %s approaches to love. You value %s in relationships and %s communication. Your ideal partner would be %s and share your %s approach to life.",
			c.pick(romanticStyles), c.pick(relationshipValues), c.pick(partnerCommunication), c.pick(partnerQualities), c.pick(lifeApproaches))
	}
	return fmt.Sprintf("Your pop culture knowledge reveals %s cultural engagement and %s storytelling preferences. You connect with %s themes and %s character types.",
		c.pick(culturalEngagements), c.pick(narrativePreferences), c.pick(literaryThemes), c.pick(characterTypes))
}

func (c *Composer) trivia() string {
	return fmt.Sprintf("Your music knowledge shows %s familiarity with different genres and eras. You demonstrate %s pattern recognition and %s cultural awareness. Your responses suggest %s learning preferences and %s memory strengths.",
		c.pick(knowledgeBreadths), c.pick(patternLevels), c.pick(culturalEngagements), c.pick(learningStyles), c.pick(memoryTypes))
}

func (c *Composer) knowledge() string {
	return fmt.Sprintf("Your general knowledge demonstrates %s global awareness and %s geographic literacy. You show %s cultural knowledge and %s factual retention. Your learning style appears to be %s and you %s about world facts.",
		c.pick(awarenessLevels), c.pick(literacyLevels), c.pick(knowledgeRanges), c.pick(retentionKinds), c.pick(learningPreferences), c.pick(curiosityPhrases))
}

func (c *Composer) hypothetical() string {
	return fmt.Sprintf("Your survival instincts show %s decision-making under pressure. You demonstrate %s leadership potential and %s resource management. Your moral compass is %s and you handle crisis with %s. Your long-term thinking is %s and you %s with others.",
		c.pick(pressureDecisions), c.pick(leadershipPotentials), c.pick(resourceStyles), c.pick(ethicsKinds), c.pick(crisisResponses), c.pick(strategicKinds), c.pick(collaborationHabits))
}

func (c *Composer) generic() string {
	return fmt.Sprintf("Your responses reveal %s thinking patterns and %s decision-making approach. You demonstrate %s social orientation and %s problem-solving style. Your values appear to be %s and your approach to challenges is %s.",
		c.pick(thinkingPatterns), c.pick(decisionApproaches), c.pick(socialOrientations), c.pick(problemStyles), c.pick(valueSystems), c.pick(resilienceKinds))
}
