package subject

// 新增学科时只需在 detectionOrder 与以下三张表中补充对应条目。

var keywords = map[Subject][]string{
	Mathematics:     {"math", "calculus", "algebra", "geometry", "statistics", "probability", "equation", "formula", "integral", "derivative"},
	Physics:         {"physics", "force", "energy", "motion", "quantum", "relativity", "mechanics", "wave", "optics", "thermodynamics", "f=ma", "newton", "velocity", "acceleration", "gravity"},
	Chemistry:       {"chemistry", "chemical", "molecule", "atom", "reaction", "compound", "element", "bond", "acid", "base"},
	ComputerScience: {"programming", "code", "algorithm", "data structure", "software", "computer", "python", "java", "javascript", "web"},
	Engineering:     {"engineering", "civil", "mechanical", "electrical", "chemical engineering", "software engineering", "design", "manufacturing"},
	Biology:         {"biology", "cell", "genetics", "evolution", "organism", "ecosystem", "physiology", "anatomy", "species"},
}

var personas = map[Subject]string{
	Mathematics:     "You are an expert mathematics tutor. Provide clear, step-by-step mathematical explanations with formulas and examples when applicable.",
	Physics:         "You are an expert physics tutor. Explain physics concepts with real-world examples, equations, and practical applications.",
	Chemistry:       "You are an expert chemistry tutor. Provide detailed chemical explanations with molecular structures, reactions, and laboratory context.",
	ComputerScience: "You are an expert computer science tutor. Explain programming concepts, algorithms, and technical topics with code examples and best practices.",
	Engineering:     "You are an expert engineering tutor covering all engineering disciplines. Provide practical, real-world engineering solutions with technical details.",
	Biology:         "You are an expert biology tutor. Explain biological concepts with examples, processes, and scientific context.",
	Default:         "You are an expert academic tutor specializing in engineering and sciences. Provide comprehensive, educational answers with clear explanations and practical examples.",
}

// Guidelines 追加在每个学科系统提示词之后。
const Guidelines = `Guidelines:
- Provide comprehensive, accurate answers
- Include relevant examples and practical applications
- Explain complex concepts in simple terms
- When appropriate, mention formulas, equations, or code snippets
- Structure answers with clear headings and bullet points
- Be educational and encouraging
- If the question is unclear, ask for clarification
- For engineering topics, consider safety and real-world constraints`

const questionPlaceholder = "{question}"

var fallbacks = map[Subject]string{
	Mathematics: `📐 **Mathematics Study Guide**

For your question about "{question}", here's a comprehensive approach:

**Key Mathematical Concepts:**
• Algebra: Equations, functions, and variables
• Calculus: Derivatives, integrals, and limits
• Statistics: Data analysis and probability
• Geometry: Shapes, angles, and theorems

**Study Tips:**
1. Practice daily problems to build intuition
2. Understand concepts before memorizing formulas
3. Use visual aids for complex topics
4. Apply math to real-world scenarios

**Common Formulas:**
- Quadratic Formula: x = (-b ± √(b²-4ac)) / 2a
- Pythagorean Theorem: a² + b² = c²
- Area of Circle: A = πr²

Would you like me to elaborate on any specific mathematical concept?`,

	Physics: `⚛️ **Physics Study Guide**

Regarding your question about "{question}", here's what you need to know:

**Fundamental Physics Principles:**
• Newton's Laws of Motion
• Conservation of Energy and Momentum
• Wave Properties and Behaviors
• Electromagnetic Theory

**Key Equations:**
- F = ma (Newton's Second Law)
- E = mc² (Einstein's Equation)
- V = IR (Ohm's Law)

**Study Approach:**
1. Master the fundamentals first
2. Use diagrams and visualizations
3. Solve numerical problems regularly
4. Connect physics to everyday phenomena

Feel free to ask for more specific explanations!`,

	Chemistry: `🧪 **Chemistry Study Guide**

For your question about "{question}", start from these foundations:

**Core Chemistry Topics:**
• Atomic structure and the periodic table
• Chemical bonding: ionic, covalent, and metallic
• Stoichiometry and balancing equations
• Acids, bases, and pH

**Useful Relationships:**
- Ideal Gas Law: PV = nRT
- Molarity: M = moles of solute / liters of solution
- pH = -log[H⁺]

**Study Tips:**
1. Learn the periodic trends before memorizing reactions
2. Draw molecular structures by hand
3. Balance equations step by step
4. Relate reactions to lab observations

Would you like a worked example for this topic?`,

	ComputerScience: `💻 **Computer Science Study Guide**

For your question about "{question}", here's a structured way in:

**Key Areas:**
• Data structures: arrays, lists, trees, graphs, hash tables
• Algorithms: sorting, searching, recursion, dynamic programming
• Complexity: Big-O analysis of time and space
• Software design: abstraction, modularity, testing

**Study Approach:**
1. Trace small examples by hand before coding
2. Implement each data structure yourself once
3. Compare the complexity of alternative solutions
4. Read and review other people's code

Would you like a code example for this concept?`,

	Engineering: `⚙️ **Engineering Study Guide**

For your question about "{question}", consider the engineering workflow:

**Engineering Fundamentals:**
• Statics and dynamics
• Materials and their properties
• Circuits and systems
• Design constraints, tolerances, and safety factors

**Problem-Solving Steps:**
1. Define requirements and constraints
2. Sketch the system and list known quantities
3. Apply governing equations and check units
4. Validate results against real-world limits

Would you like to go through a design example?`,

	Biology: `🧬 **Biology Study Guide**

For your question about "{question}", these concepts will help:

**Core Biology Themes:**
• Cell structure and function
• Genetics and heredity
• Evolution and natural selection
• Ecosystems and energy flow

**Study Tips:**
1. Use diagrams to learn processes such as mitosis and photosynthesis
2. Connect structure to function at every level
3. Build concept maps linking topics
4. Review terminology with spaced repetition

Would you like a deeper explanation of any process?`,

	Default: `🎯 **General Study Advice**

For your question about "{question}", here's a structured learning approach:

**Effective Learning Strategies:**
1. **Active Learning**: Engage with material through practice
2. **Spaced Repetition**: Review material at increasing intervals
3. **Concept Mapping**: Create visual connections between ideas
4. **Practice Problems**: Apply knowledge through exercises

**Study Tips:**
• Break complex topics into smaller parts
• Use multiple learning resources
• Teach concepts to others
• Take regular breaks to maintain focus

**Time Management:**
• Use the Pomodoro Technique (25 min study, 5 min break)
• Prioritize difficult topics when fresh
• Create a consistent study schedule

Would you like more specific guidance on this topic?`,
}
