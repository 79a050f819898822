package catalog

import "github.com/klytics/refcat/internal/report"

var (
	structureColumns = []string{
		"Category", "Name", "Concept", "Java", "C++", "Python", "JavaScript",
		"Access by index", "Access front", "Access back",
		"Insert front", "Insert middle", "Insert back",
		"Delete front", "Delete middle", "Delete back",
		"Search unsorted", "Search sorted",
		"Memory locality", "Memory overhead",
		"Ordered", "Duplicates", "Thread-safe",
		"Use cases", "Industries", "When to use", "When NOT to use",
	}
	conceptColumns    = []string{"Concept", "Explanation", "Industries", "When used", "When not used"}
	operationColumns  = []string{"Operation", "Meaning", "Example"}
	libraryColumns    = []string{"Language", "Category", "Libraries"}
	complexityColumns = []string{"Notation", "Name", "Description", "Examples"}
	useCaseColumns    = []string{"Scenario", "Requirements", "Best choice", "Why", "Avoid"}
)

// Structures returns the cross-language data structures catalog. It keeps
// its own width tuning (narrower cap than the functions catalog).
func Structures() *Catalog {
	style := report.DefaultStyle()
	style.WidthMargin = 2
	style.MaxWidth = 50

	return &Catalog{
		Name:          "structures",
		DefaultOutput: "datastructures_comprehensive_catalog.xlsx",
		Style:         style,
		Workbook: &report.Workbook{
			Tables: []report.Table{
				{Name: "Data Structures", Columns: structureColumns, Records: structures},
				{Name: "Concepts", Columns: conceptColumns, Records: concepts},
				{Name: "Operations Legend", Columns: operationColumns, Records: operationsLegend},
				{Name: "Libraries", Columns: libraryColumns, Records: libraries},
				{Name: "Complexity Guide", Columns: complexityColumns, Records: complexityGuide},
				{Name: "Use Case Scenarios", Columns: useCaseColumns, Records: useCases},
			},
		},
	}
}

var structures = []report.Record{
	{
		"Category": "Linear - Array Based",
		"Name":     "Fixed-size Array",
		"Concept":  "Contiguous block of memory with fixed size",
		"Java":     "T[] (primitive/object arrays)", "C++": "std::array<T,N> or T[]",
		"Python": "array.array() or list", "JavaScript": "TypedArray or Array",
		"Access by index": "O(1)", "Access front": "O(1)", "Access back": "O(1)",
		"Insert front": "O(n)", "Insert middle": "O(n)", "Insert back": "O(1) if space, O(n) if resize",
		"Delete front": "O(n)", "Delete middle": "O(n)", "Delete back": "O(1)",
		"Search unsorted": "O(n)", "Search sorted": "O(log n)",
		"Memory locality": "Excellent", "Memory overhead": "Minimal",
		"Ordered": "Yes (insertion order)", "Duplicates": "Yes", "Thread-safe": "No",
		"Use cases":       "Matrices, buffers, lookup tables, image data, audio samples",
		"Industries":      "Embedded systems, games, signal processing, graphics, scientific computing",
		"When to use":     "Size known at compile-time; maximum performance needed; memory constrained",
		"When NOT to use": "Size needs to grow dynamically; frequent inserts/deletes except at end",
	},
	{
		"Category": "Linear - Array Based",
		"Name":     "Dynamic Array (ArrayList/Vector)",
		"Concept":  "Resizable array with amortized growth",
		"Java":     "ArrayList<E>", "C++": "std::vector<T>",
		"Python": "list", "JavaScript": "Array",
		"Access by index": "O(1)", "Access front": "O(1)", "Access back": "O(1)",
		"Insert front": "O(n)", "Insert middle": "O(n)", "Insert back": "Amortized O(1)",
		"Delete front": "O(n)", "Delete middle": "O(n)", "Delete back": "O(1)",
		"Search unsorted": "O(n)", "Search sorted": "O(log n)",
		"Memory locality": "Excellent", "Memory overhead": "Low (spare capacity)",
		"Ordered": "Yes (insertion order)", "Duplicates": "Yes", "Thread-safe": "No",
		"Use cases":       "Default sequential collection, stacks, dynamic buffers",
		"Industries":      "Everywhere - the default collection in most codebases",
		"When to use":     "Default choice for sequences; mostly-append workloads; random access",
		"When NOT to use": "Frequent front/middle inserts; strict memory ceilings",
	},
	{
		"Category": "Linear - Node Based",
		"Name":     "Doubly Linked List",
		"Concept":  "Nodes with prev/next pointers, no contiguity",
		"Java":     "LinkedList<E>", "C++": "std::list<T>",
		"Python": "collections.deque (similar)", "JavaScript": "No built-in (custom)",
		"Access by index": "O(n)", "Access front": "O(1)", "Access back": "O(1)",
		"Insert front": "O(1)", "Insert middle": "O(1) with iterator", "Insert back": "O(1)",
		"Delete front": "O(1)", "Delete middle": "O(1) with iterator", "Delete back": "O(1)",
		"Search unsorted": "O(n)", "Search sorted": "O(n)",
		"Memory locality": "Poor", "Memory overhead": "High (two pointers per node)",
		"Ordered": "Yes (insertion order)", "Duplicates": "Yes", "Thread-safe": "No",
		"Use cases":       "LRU caches, undo stacks, playlist manipulation",
		"Industries":      "Systems software, text editors, media players",
		"When to use":     "Many inserts/deletes at known positions; stable iterators needed",
		"When NOT to use": "Random access; cache-sensitive code (vector usually wins anyway)",
	},
	{
		"Category": "Associative - Hash Based",
		"Name":     "Hash Map",
		"Concept":  "Hash function maps keys to buckets; average O(1) operations",
		"Java":     "HashMap<K,V>", "C++": "std::unordered_map<K,V>",
		"Python": "dict", "JavaScript": "Map or plain object",
		"Access by index": "N/A", "Access front": "N/A", "Access back": "N/A",
		"Insert front": "N/A", "Insert middle": "O(1) avg", "Insert back": "N/A",
		"Delete front": "N/A", "Delete middle": "O(1) avg", "Delete back": "N/A",
		"Search unsorted": "O(1) avg, O(n) worst", "Search sorted": "N/A",
		"Memory locality": "Poor", "Memory overhead": "Moderate (load factor slack)",
		"Ordered": "No (Python dict: insertion order)", "Duplicates": "Keys no, values yes", "Thread-safe": "No",
		"Use cases":       "Caches, symbol tables, frequency counting, deduplication, indexes",
		"Industries":      "Web development, databases, compilers, caching systems",
		"When to use":     "Key-value lookup dominates; order irrelevant",
		"When NOT to use": "Ordered iteration or range queries needed; adversarial keys without hardening",
	},
	{
		"Category": "Associative - Tree Based",
		"Name":     "Sorted Map (Red-Black Tree)",
		"Concept":  "Self-balancing BST keyed by comparison; O(log n) guaranteed",
		"Java":     "TreeMap<K,V>", "C++": "std::map<K,V>",
		"Python": "sortedcontainers.SortedDict (3rd party)", "JavaScript": "No built-in (custom)",
		"Access by index": "N/A", "Access front": "O(log n) (min key)", "Access back": "O(log n) (max key)",
		"Insert front": "N/A", "Insert middle": "O(log n)", "Insert back": "N/A",
		"Delete front": "N/A", "Delete middle": "O(log n)", "Delete back": "N/A",
		"Search unsorted": "O(log n)", "Search sorted": "O(log n)",
		"Memory locality": "Poor", "Memory overhead": "High (pointers + color bit)",
		"Ordered": "Yes (key order)", "Duplicates": "Keys no", "Thread-safe": "No",
		"Use cases":       "Range queries, ordered iteration, ceiling/floor lookups, interval bookkeeping",
		"Industries":      "Databases, financial systems, operating systems",
		"When to use":     "Sorted keys with worst-case guarantees; range scans",
		"When NOT to use": "Pure point lookups (hash map is faster on average)",
	},
	{
		"Category": "Hierarchical",
		"Name":     "Binary Heap",
		"Concept":  "Complete binary tree in an array; parent dominates children",
		"Java":     "PriorityQueue<E>", "C++": "std::priority_queue<T>",
		"Python": "heapq", "JavaScript": "No built-in (custom)",
		"Access by index": "N/A", "Access front": "O(1) (top)", "Access back": "N/A",
		"Insert front": "N/A", "Insert middle": "O(log n)", "Insert back": "N/A",
		"Delete front": "O(log n) (pop top)", "Delete middle": "O(n)", "Delete back": "N/A",
		"Search unsorted": "O(n)", "Search sorted": "N/A",
		"Memory locality": "Excellent (array backed)", "Memory overhead": "Minimal",
		"Ordered": "Partial (heap property)", "Duplicates": "Yes", "Thread-safe": "No",
		"Use cases":       "Priority scheduling, Dijkstra, top-k selection, event simulation",
		"Industries":      "Operating systems, networking, game AI, logistics",
		"When to use":     "Repeated min/max extraction; streaming top-k",
		"When NOT to use": "Arbitrary search or deletion; full sorted order needed",
	},
	{
		"Category": "Linear - Adapter",
		"Name":     "Deque (Double-ended Queue)",
		"Concept":  "Blocks of memory indexed for O(1) operations at both ends",
		"Java":     "ArrayDeque<E>", "C++": "std::deque<T>",
		"Python": "collections.deque", "JavaScript": "Array (shift is O(n))",
		"Access by index": "O(1)", "Access front": "O(1)", "Access back": "O(1)",
		"Insert front": "O(1)", "Insert middle": "O(n)", "Insert back": "O(1)",
		"Delete front": "O(1)", "Delete middle": "O(n)", "Delete back": "O(1)",
		"Search unsorted": "O(n)", "Search sorted": "O(log n)",
		"Memory locality": "Good", "Memory overhead": "Low-moderate",
		"Ordered": "Yes (insertion order)", "Duplicates": "Yes", "Thread-safe": "No",
		"Use cases":       "Sliding windows, BFS frontiers, work-stealing queues",
		"Industries":      "Schedulers, stream processing, competitive programming",
		"When to use":     "Both ends active; queue and stack in one structure",
		"When NOT to use": "Middle insertion heavy; tight cache requirements (vector)",
	},
}

var concepts = []report.Record{
	{
		"Concept":       "Hash Table",
		"Explanation":   "Data structure using hash function to map keys to buckets. Provides average O(1) lookup, insert, delete. Collision handling via chaining (linked lists) or open addressing (probing).",
		"Industries":    "Web development, databases, caching systems, compilers, interpreters",
		"When used":     "Dictionaries, caches, symbol tables, frequency counting, memoization, deduplication",
		"When not used": "When ordered iteration required; when worst-case guarantees needed; when keys need sorting",
	},
	{
		"Concept":       "Balanced Binary Search Tree",
		"Explanation":   "Self-balancing tree maintaining O(log n) height through rotations. Variants include AVL (strict height balance), Red-Black (relaxed balance, fewer rotations), and B-Tree (multi-key nodes for disk).",
		"Industries":    "Database management, operating systems, compilers, financial systems",
		"When used":     "Sorted collections, range queries, order statistics, ceiling/floor operations, sorted maps/sets",
		"When not used": "When hash table's average O(1) is sufficient; when order doesn't matter; high memory overhead unacceptable",
	},
	{
		"Concept":       "Heap Property",
		"Explanation":   "Complete binary tree where every parent dominates its children (max-heap: parent >= children; min-heap: parent <= children). Stored compactly in an array with index arithmetic for parent/child navigation.",
		"Industries":    "Operating systems, networking, simulation, logistics",
		"When used":     "Priority queues, heapsort, k-way merges, streaming medians",
		"When not used": "When arbitrary search or ordered traversal is needed; when stable ordering of equal priorities matters",
	},
	{
		"Concept":       "Amortized Analysis",
		"Explanation":   "Averaging operation cost over a sequence. A dynamic array's occasional O(n) reallocation averages out to O(1) per append because capacity doubles, so expensive steps are exponentially rare.",
		"Industries":    "Library and language runtime design, performance engineering",
		"When used":     "Justifying dynamic array growth, hash table resizing, union-find with path compression",
		"When not used": "Real-time systems where a single worst-case spike breaks a deadline",
	},
	{
		"Concept":       "Cache Locality",
		"Explanation":   "Contiguous memory layouts let the CPU prefetch effectively; pointer-chasing structures (linked lists, trees) scatter nodes and stall on memory. Often dominates asymptotic differences at realistic sizes.",
		"Industries":    "Game engines, HFT, scientific computing, embedded",
		"When used":     "Choosing vector over list even for insert-heavy loads; flattening trees into arrays",
		"When not used": "When element identity/pointer stability matters more than throughput",
	},
}

var operationsLegend = []report.Record{
	{"Operation": "Access by index", "Meaning": "Time to retrieve element at specific numeric index position", "Example": "array[5], list.get(5)"},
	{"Operation": "Access front", "Meaning": "Time to access first element", "Example": "array[0], list.getFirst(), deque.peekFirst()"},
	{"Operation": "Access back", "Meaning": "Time to access last element", "Example": "array[n-1], list.getLast(), deque.peekLast()"},
	{"Operation": "Insert front", "Meaning": "Time to insert new element at beginning", "Example": "list.addFirst(x), deque.offerFirst(x)"},
	{"Operation": "Insert middle", "Meaning": "Time to insert at arbitrary interior position", "Example": "list.add(i, x), vector.insert(it, x)"},
	{"Operation": "Insert back", "Meaning": "Time to append element at end", "Example": "list.add(x), vector.push_back(x)"},
	{"Operation": "Delete front", "Meaning": "Time to remove first element", "Example": "deque.pollFirst(), vector.erase(begin)"},
	{"Operation": "Delete middle", "Meaning": "Time to remove an arbitrary interior element", "Example": "list.remove(i), vector.erase(it)"},
	{"Operation": "Delete back", "Meaning": "Time to remove last element", "Example": "list.removeLast(), vector.pop_back()"},
	{"Operation": "Search unsorted", "Meaning": "Time to find a value with no ordering assumption", "Example": "linear scan, contains(x)"},
	{"Operation": "Search sorted", "Meaning": "Time to find a value when data is kept sorted", "Example": "binary search, tree descent"},
}

var libraries = []report.Record{
	{
		"Language": "Java", "Category": "Collections Framework",
		"Libraries": "java.util: ArrayList, LinkedList, HashMap, TreeMap, HashSet, TreeSet, PriorityQueue, ArrayDeque, LinkedHashMap, BitSet, ConcurrentHashMap, ConcurrentSkipListMap",
	},
	{
		"Language": "Java", "Category": "Third-party",
		"Libraries": "Google Guava: Multimap, BiMap, Table, BloomFilter, Cache. Apache Commons: CircularFifoQueue. FastUtil: optimized primitive collections",
	},
	{
		"Language": "C++", "Category": "STL",
		"Libraries": "Sequence: vector, deque, list, forward_list, array. Associative: map, multimap, set, multiset, unordered_map, unordered_multimap, unordered_set, unordered_multiset. Adapters: stack, queue, priority_queue",
	},
	{
		"Language": "C++", "Category": "Third-party",
		"Libraries": "Abseil: flat_hash_map, btree_map. Boost: multi_index, circular_buffer, intrusive containers. folly: F14 hash maps",
	},
	{
		"Language": "Python", "Category": "Built-in / stdlib",
		"Libraries": "list, dict, set, tuple, frozenset. collections: deque, Counter, OrderedDict, defaultdict. heapq, bisect, array",
	},
	{
		"Language": "Python", "Category": "Third-party",
		"Libraries": "sortedcontainers: SortedList, SortedDict, SortedSet. numpy: ndarray. pandas: Series, DataFrame",
	},
	{
		"Language": "JavaScript", "Category": "Built-in",
		"Libraries": "Array, Map, Set, WeakMap, WeakSet, TypedArray (Int32Array, Float64Array, ...), object as record",
	},
	{
		"Language": "JavaScript", "Category": "Third-party",
		"Libraries": "Immutable.js: List, Map, Set. lodash: collection helpers. datastructures-js: heaps, tries, graphs",
	},
}

var complexityGuide = []report.Record{
	{"Notation": "O(1)", "Name": "Constant", "Description": "Operation takes same time regardless of input size", "Examples": "Array access by index, hash table lookup (average), stack push/pop"},
	{"Notation": "O(log n)", "Name": "Logarithmic", "Description": "Time grows logarithmically with input size. Typically from dividing problem in half repeatedly", "Examples": "Binary search, balanced tree operations, heap insert/delete"},
	{"Notation": "O(n)", "Name": "Linear", "Description": "Time grows proportionally with input size", "Examples": "Linear search, list traversal, counting elements"},
	{"Notation": "O(n log n)", "Name": "Linearithmic", "Description": "Linear work at each of log n levels; the floor for comparison sorting", "Examples": "Merge sort, heapsort, quicksort (average), building a heap by repeated insert"},
	{"Notation": "O(n²)", "Name": "Quadratic", "Description": "Time grows with the square of input size; nested iteration over the data", "Examples": "Bubble sort, insertion sort, all-pairs comparison"},
	{"Notation": "O(2ⁿ)", "Name": "Exponential", "Description": "Time doubles with each added element; only viable for tiny inputs", "Examples": "Subset enumeration, naive recursive Fibonacci",
	},
	{"Notation": "Amortized O(1)", "Name": "Amortized constant", "Description": "Individual operations may be slow, but any sequence averages to constant per operation", "Examples": "Dynamic array append, hash table insert with resizing"},
}

var useCases = []report.Record{
	{
		"Scenario":     "Caching with size limit",
		"Requirements": "Fast access, automatic eviction, size bounded",
		"Best choice":  "LRU Cache (LinkedHashMap + eviction)",
		"Why":          "O(1) access and update, automatic eviction of least recently used",
		"Avoid":        "Regular HashMap (no eviction), TreeMap (slower access)",
	},
	{
		"Scenario":     "Autocomplete / prefix search",
		"Requirements": "Fast prefix matching, many queries",
		"Best choice":  "Trie (Prefix Tree)",
		"Why":          "O(m) prefix search where m=query length, natural prefix operations",
		"Avoid":        "Hash map (can't do prefix), sorted array (slower), BST (not optimized for prefixes)",
	},
	{
		"Scenario":     "Task scheduling by priority",
		"Requirements": "Always process most urgent task next; frequent inserts",
		"Best choice":  "Binary Heap (PriorityQueue)",
		"Why":          "O(1) peek of highest priority, O(log n) insert and extract",
		"Avoid":        "Sorted list (O(n) insert), re-sorting an array per task",
	},
	{
		"Scenario":     "Leaderboard with rank queries",
		"Requirements": "Sorted order, fast updates, range and rank lookups",
		"Best choice":  "Balanced BST / skip list (TreeMap, SortedList)",
		"Why":          "O(log n) insert, delete, rank and range queries in one structure",
		"Avoid":        "Hash map (no order), array resorted per update",
	},
	{
		"Scenario":     "Sliding window over a stream",
		"Requirements": "O(1) add at back and evict at front",
		"Best choice":  "Deque",
		"Why":          "Constant-time operations at both ends; monotonic-deque tricks for window extrema",
		"Avoid":        "Array with shift (O(n) evictions), linked list (allocation churn)",
	},
	{
		"Scenario":     "Membership test over a huge set, some error tolerated",
		"Requirements": "Tiny memory, fast lookup, no false negatives",
		"Best choice":  "Bloom Filter",
		"Why":          "Bits per element instead of bytes; constant-time probabilistic lookup",
		"Avoid":        "Hash set (memory), sorted file scan (latency)",
	},
}
