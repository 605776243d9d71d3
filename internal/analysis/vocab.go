package analysis

// Trait vocabularies, four candidates per slot. The slices are package-level
// so templates in composer.go stay readable; order matters for seeded tests.

// Personality
var (
	leadershipQualities = []string{"strong", "emerging", "collaborative", "thoughtful"}
	decisionTendencies  = []string{"decisive", "consultative", "analytical", "intuitive"}
	challengeResponses  = []string{"high adaptability", "steady persistence", "creative problem-solving", "emotional intelligence"}
	communicationStyles = []string{"direct and clear", "diplomatic and thoughtful", "inspiring and motivational", "empathetic and supportive"}
	visionStyles        = []string{"strategic and forward-thinking", "practical and grounded", "innovative and creative", "collaborative and inclusive"}
	socialPreferences   = []string{"extroverted", "introverted", "ambivert", "selectively social"}
	energySources       = []string{"social interaction", "quiet reflection", "varied activities", "meaningful conversations"}
	processingModes     = []string{"external discussion", "internal reflection", "collaborative analysis", "intuitive assessment"}
	expressionStyles    = []string{"direct and open", "thoughtful and measured", "warm and engaging", "authentic and genuine"}
	copingStrategies    = []string{"seeking support", "independent processing", "active problem-solving", "creative outlets"}
	courageTraits       = []string{"fierce determination", "quiet strength", "strategic bravery", "protective instincts"}
	loyaltyTraits       = []string{"unwavering dedication", "earned trust", "protective devotion", "selective bonding"}
	adaptabilityTraits  = []string{"creative solutions", "flexible thinking", "resilient responses", "innovative approaches"}
	conflictApproaches  = []string{"direct confrontation", "diplomatic resolution", "strategic planning", "collaborative problem-solving"}
	motivations         = []string{"protecting others", "personal growth", "achieving goals", "making a difference"}
	authenticityTraits  = []string{"strong authenticity", "evolving self-awareness", "value-driven choices", "genuine expression"}
	valueBases          = []string{"core principles", "practical considerations", "relationship priorities", "long-term vision"}
	relationshipDepths  = []string{"emotional depth", "intellectual connection", "shared experiences", "mutual growth"}
	legacyFocuses       = []string{"inspiring others", "creating change", "building legacy", "meaningful contributions"}
	primaryTraits       = []string{"analytical", "creative", "social", "practical"}
	secondaryTraits     = []string{"empathetic", "decisive", "adaptable", "systematic"}
	problemApproaches   = []string{"methodical analysis", "creative innovation", "collaborative approach", "intuitive insights"}
	interpersonalStyles = []string{"engaging and outgoing", "thoughtful and observant", "supportive and caring", "independent and self-reliant"}
)

// Love and Relationships
var (
	givingStyles        = []string{"express love through actions", "show care through words", "demonstrate affection physically", "create quality experiences"}
	receivingStyles     = []string{"someone shows practical support", "you hear affirming words", "you experience physical closeness", "you share meaningful time"}
	needCommunication   = []string{"express needs directly", "prefer subtle indication", "seek collaborative discussion", "value emotional connection"}
	conflictResolutions = []string{"addressing issues openly", "taking time to process", "seeking understanding", "finding compromise"}
	emotionalNeeds      = []string{"consistency and reliability", "verbal affirmation", "physical presence", "shared experiences"}
	careExpressions     = []string{"thoughtful actions", "meaningful words", "physical affection", "quality time"}
	maturityLevels      = []string{"high", "developing", "situational", "growing"}
	commitmentStances   = []string{"confidence and readiness", "cautious optimism", "fear but willingness", "uncertainty"}
	conflictManners     = []string{"constructively", "avoidantly", "emotionally", "analytically"}
	opennessStyles      = []string{"direct and honest", "gradual and careful", "emotionally expressive", "selectively sharing"}
	expectationManners  = []string{"realistically", "optimistically", "cautiously", "flexibly"}
	warningResponses    = []string{"overlook", "rationalize", "minimize", "excuse"}
	rationalizations    = []string{"make excuses for", "try to understand", "hope to change", "adapt to"}
	boundaryHabits      = []string{"struggle with enforcing", "clearly communicate", "gradually establish", "inconsistently maintain"}
	vulnerabilityLevels = []string{"heightened", "moderate", "low", "situational"}
	advocacyHabits      = []string{"struggle to advocate", "confidently advocate", "selectively advocate", "learn to advocate"}
	attachmentStyles    = []string{"secure", "anxious", "avoidant", "disorganized"}
	commitmentApproaches = []string{"with confidence", "with caution", "with hope", "with uncertainty"}
)

// Pop Culture
var (
	emotionalDepths      = []string{"deep emotional", "intellectual", "empathetic", "analytical"}
	literaryThemes       = []string{"resilience and growth", "love and relationships", "social justice", "personal transformation"}
	characterQualities   = []string{"complex", "relatable", "inspiring", "realistic"}
	empathyLevels        = []string{"high", "developing", "situational", "cognitive"}
	characterArchetypes  = []string{"strong, determined", "complex, flawed", "supportive, loyal", "independent, creative"}
	storylineKinds       = []string{"character-driven", "plot-focused", "emotional", "adventure-based"}
	characterTraits      = []string{"resilient", "authentic", "complex", "relatable"}
	entertainmentValues  = []string{"authenticity", "growth", "connection", "adventure"}
	mediaApproaches      = []string{"immersive", "selective", "emotional", "analytical"}
	romanticStyles       = []string{"practical and supportive", "passionate and intense", "thoughtful and steady", "adventurous and spontaneous"}
	relationshipValues   = []string{"honesty and directness", "emotional connection", "shared growth", "mutual respect"}
	partnerCommunication = []string{"direct", "thoughtful", "emotional", "collaborative"}
	partnerQualities     = []string{"intellectually stimulating", "emotionally supportive", "practically helpful", "adventurous and fun"}
	lifeApproaches       = []string{"goal-oriented", "relationship-focused", "growth-minded", "balanced"}
	narrativePreferences = []string{"character-driven", "plot-focused", "thematic", "emotional"}
	characterTypes       = []string{"complex protagonists", "relatable characters", "strong leaders", "flawed heroes"}
)

// Trivia and General Knowledge
var (
	knowledgeBreadths   = []string{"impressive", "solid", "selective", "developing"}
	patternLevels       = []string{"strong", "good", "moderate", "developing"}
	culturalEngagements = []string{"broad", "focused", "deep", "growing"}
	learningStyles      = []string{"auditory", "visual", "experiential", "analytical"}
	memoryTypes         = []string{"factual", "contextual", "associative", "narrative"}
	awarenessLevels     = []string{"strong", "developing", "selective", "growing"}
	literacyLevels      = []string{"excellent", "good", "moderate", "basic"}
	knowledgeRanges     = []string{"diverse", "focused", "deep", "expanding"}
	retentionKinds      = []string{"strong", "good", "selective", "contextual"}
	learningPreferences = []string{"systematic", "exploratory", "social", "independent"}
	curiosityPhrases    = []string{"show high curiosity", "demonstrate focused interest", "display selective curiosity", "exhibit growing interest"}
)

// Hypotheticals
var (
	pressureDecisions    = []string{"decisive", "analytical", "collaborative", "adaptive"}
	leadershipPotentials = []string{"strong", "emerging", "situational", "collaborative"}
	resourceStyles       = []string{"strategic", "practical", "collaborative", "adaptive"}
	ethicsKinds          = []string{"strong", "flexible", "practical", "situational"}
	crisisResponses      = []string{"high adaptability", "steady resilience", "creative flexibility", "practical adjustment"}
	strategicKinds       = []string{"highly strategic", "practically focused", "collaboratively oriented", "adaptively responsive"}
	collaborationHabits  = []string{"work well", "prefer independence", "selectively collaborate", "naturally lead"}
)

// Generic fallback
var (
	thinkingPatterns   = []string{"analytical", "creative", "intuitive", "systematic"}
	decisionApproaches = []string{"methodical", "intuitive", "collaborative", "decisive"}
	socialOrientations = []string{"people-focused", "task-oriented", "balanced", "situational"}
	problemStyles      = []string{"systematic", "creative", "collaborative", "intuitive"}
	valueSystems       = []string{"principle-based", "relationship-focused", "growth-oriented", "practical"}
	resilienceKinds    = []string{"methodical persistence", "creative adaptation", "collaborative strength", "independent determination"}
)
